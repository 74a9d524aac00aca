// Package format renders byte counts for humans.
package format

import "fmt"

const unitBase = 1024

var unitNames = [...]string{"Byte", "KiB", "MiB", "GiB", "TiB"}

// Size converts a byte count into a human-readable magnitude string,
// e.g. "1.50 KiB". Zero is treated as one byte when choosing the unit.
// Values beyond the TiB range stay in TiB.
func Size(n uint64) string {
	scaled := float64(n)
	if n == 0 {
		scaled = 1
	}

	exp := 0
	for scaled >= unitBase && exp < len(unitNames)-1 {
		scaled /= unitBase
		exp++
	}

	return fmt.Sprintf("%.2f %s", scaled, unitNames[exp])
}

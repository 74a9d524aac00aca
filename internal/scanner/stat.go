package scanner

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts the creation and last-access timestamps from the
// platform stat data. Linux exposes no birth time through stat, so the
// inode change time stands in for "created". When the raw stat is
// unavailable the modification time is the only timestamp left.
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(sys.Ctim.Sec, sys.Ctim.Nsec), time.Unix(sys.Atim.Sec, sys.Atim.Nsec)
	}
	return info.ModTime(), info.ModTime()
}

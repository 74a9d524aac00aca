// Package scanner finds deletion candidates in a directory tree.
package scanner

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// File is one deletion candidate. The size is read once at scan time
// and never refreshed; deleting the file later does not touch it.
type File struct {
	Path string
	Size uint64
}

// Result pairs the whole-tree byte total with the size-sorted
// candidates. TotalSize covers every regular file the walk saw,
// including files the age filters rejected.
type Result struct {
	TotalSize uint64
	Files     []File
}

// Options holds the minimum age per time dimension. A zero duration
// disables that dimension. A file must satisfy all three to become a
// candidate.
type Options struct {
	MinCreated  time.Duration
	MinModified time.Duration
	MinAccessed time.Duration
}

// ScanError means the root itself could not be traversed. Problems
// with individual entries below the root never produce one.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

type Scanner struct {
	root string
	warn io.Writer
}

func New(root string) *Scanner {
	return &Scanner{
		root: root,
		warn: os.Stderr,
	}
}

// Scan walks the tree under the scanner's root, accumulating the size
// of every regular file and collecting those that pass all configured
// age filters. Unreadable sub-entries are reported on the warning
// writer and skipped; only an unreachable root aborts the scan.
// Candidates come back sorted by size, largest first, with no defined
// order among equal sizes.
func (s *Scanner) Scan(opts Options) (*Result, error) {
	now := time.Now()
	result := &Result{}

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			fmt.Fprintf(s.warn, "%v. Skipping...\n", err)
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			fmt.Fprintf(s.warn, "%v. Skipping...\n", err)
			return nil
		}

		size := uint64(info.Size())
		result.TotalSize += size

		created, accessed := statTimes(info)
		if passes(now, opts.MinCreated, created) &&
			passes(now, opts.MinModified, info.ModTime()) &&
			passes(now, opts.MinAccessed, accessed) {
			result.Files = append(result.Files, File{Path: path, Size: size})
		}

		return nil
	})
	if err != nil {
		return nil, &ScanError{Root: s.root, Err: err}
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Size > result.Files[j].Size
	})

	return result, nil
}

// SetWarnWriter redirects the diagnostics for skipped entries.
func (s *Scanner) SetWarnWriter(w io.Writer) {
	s.warn = w
}

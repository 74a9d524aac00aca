// Package cleaner deletes single files after operator confirmation,
// refusing anything that points outside the scanned tree.
package cleaner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
)

type Cleaner struct {
	root    string
	rootDev uint64
}

type SecurityError struct {
	Path   string
	Reason string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("security violation for path %s: %s", e.Path, e.Reason)
}

func New(root string) (*Cleaner, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root: %w", err)
	}

	stat, err := os.Lstat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan root: %w", err)
	}

	if !stat.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", absRoot)
	}

	if stat.Mode()&os.ModeSymlink != 0 {
		return nil, &SecurityError{
			Path:   absRoot,
			Reason: "scan root cannot be a symlink",
		}
	}

	var rootDev uint64
	if sysstat, ok := stat.Sys().(*syscall.Stat_t); ok {
		rootDev = uint64(sysstat.Dev)
	}

	return &Cleaner{
		root:    absRoot,
		rootDev: rootDev,
	}, nil
}

// ConfirmAndDelete asks the operator whether the file should go and
// removes it on an affirmative answer. It reports whether the file was
// actually deleted; declining is not an error.
func (c *Cleaner) ConfirmAndDelete(path string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete file %s?", path)).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	if !confirmed {
		return false, nil
	}

	if err := c.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes one regular file inside the scanned tree. A single
// filesystem call, no retries.
func (c *Cleaner) Remove(path string) error {
	if err := c.validatePathSecurity(path); err != nil {
		return err
	}

	stat, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if stat.Mode()&os.ModeSymlink != 0 {
		return &SecurityError{
			Path:   path,
			Reason: "target is a symlink, refusing to delete",
		}
	}

	if !stat.Mode().IsRegular() {
		return &SecurityError{
			Path:   path,
			Reason: "target is not a regular file",
		}
	}

	return os.Remove(path)
}

func (c *Cleaner) validatePathSecurity(path string) error {
	if !utf8.ValidString(path) {
		return &SecurityError{
			Path:   path,
			Reason: "path contains invalid UTF-8 characters",
		}
	}

	if strings.Contains(path, "\x00") {
		return &SecurityError{
			Path:   path,
			Reason: "path contains null bytes",
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	if absPath != cleanPath {
		return &SecurityError{
			Path:   path,
			Reason: "path normalization mismatch (potential traversal attack)",
		}
	}

	if !strings.HasPrefix(absPath+string(filepath.Separator), c.root+string(filepath.Separator)) {
		return &SecurityError{
			Path:   path,
			Reason: "path is outside the scanned tree",
		}
	}

	if absPath == c.root {
		return &SecurityError{
			Path:   path,
			Reason: "cannot delete the scan root itself",
		}
	}

	if c.rootDev != 0 {
		if stat, err := os.Lstat(absPath); err == nil {
			if sysstat, ok := stat.Sys().(*syscall.Stat_t); ok {
				if uint64(sysstat.Dev) != c.rootDev {
					return &SecurityError{
						Path:   path,
						Reason: "path crosses filesystem boundary",
					}
				}
			}
		}
	}

	return nil
}

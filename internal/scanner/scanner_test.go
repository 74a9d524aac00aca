package scanner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFileOfSize(t *testing.T, path string, size int) {
	t.Helper()
	err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

func TestScanRanksBySize(t *testing.T) {
	tempDir := t.TempDir()

	subDir := filepath.Join(tempDir, "nested")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	writeFileOfSize(t, filepath.Join(tempDir, "a.txt"), 10)
	writeFileOfSize(t, filepath.Join(tempDir, "b.txt"), 20)
	writeFileOfSize(t, filepath.Join(subDir, "c.txt"), 5)
	writeFileOfSize(t, filepath.Join(subDir, "d.txt"), 100)

	result, err := New(tempDir).Scan(Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.TotalSize != 135 {
		t.Errorf("Expected total size 135, got %d", result.TotalSize)
	}

	expectedSizes := []uint64{100, 20, 10, 5}
	if len(result.Files) != len(expectedSizes) {
		t.Fatalf("Expected %d candidates, got %d", len(expectedSizes), len(result.Files))
	}
	for i, expected := range expectedSizes {
		if result.Files[i].Size != expected {
			t.Errorf("Expected candidate %d to have size %d, got %d", i, expected, result.Files[i].Size)
		}
	}
}

func TestScanDisabledFiltersKeepAllRegularFiles(t *testing.T) {
	tempDir := t.TempDir()

	writeFileOfSize(t, filepath.Join(tempDir, "one.txt"), 1)
	writeFileOfSize(t, filepath.Join(tempDir, "two.txt"), 2)

	result, err := New(tempDir).Scan(Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Files) != 2 {
		t.Errorf("Expected every regular file as candidate, got %d of 2", len(result.Files))
	}

	var candidateSum uint64
	for _, f := range result.Files {
		candidateSum += f.Size
	}
	if candidateSum != result.TotalSize {
		t.Errorf("Expected candidate sum %d to equal total size %d", candidateSum, result.TotalSize)
	}
}

func TestScanTotalIncludesFilteredFiles(t *testing.T) {
	tempDir := t.TempDir()

	oldFile := filepath.Join(tempDir, "old.txt")
	newFile := filepath.Join(tempDir, "new.txt")
	writeFileOfSize(t, oldFile, 30)
	writeFileOfSize(t, newFile, 70)

	past := time.Now().Add(-40 * 24 * time.Hour)
	if err := os.Chtimes(oldFile, past, past); err != nil {
		t.Fatalf("Failed to age test file: %v", err)
	}

	result, err := New(tempDir).Scan(Options{MinModified: 30 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.TotalSize != 100 {
		t.Errorf("Expected total size to count filtered files, got %d", result.TotalSize)
	}

	if len(result.Files) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(result.Files))
	}
	if result.Files[0].Path != oldFile {
		t.Errorf("Expected candidate %s, got %s", oldFile, result.Files[0].Path)
	}

	var candidateSum uint64
	for _, f := range result.Files {
		candidateSum += f.Size
	}
	if candidateSum > result.TotalSize {
		t.Errorf("Candidate sum %d exceeds total size %d", candidateSum, result.TotalSize)
	}
}

func TestScanAccessFilter(t *testing.T) {
	tempDir := t.TempDir()

	staleFile := filepath.Join(tempDir, "stale.txt")
	writeFileOfSize(t, staleFile, 10)

	past := time.Now().Add(-10 * 24 * time.Hour)
	if err := os.Chtimes(staleFile, past, past); err != nil {
		t.Fatalf("Failed to age test file: %v", err)
	}

	result, err := New(tempDir).Scan(Options{MinAccessed: 5 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Files) != 1 {
		t.Errorf("Expected stale file to pass the access filter, got %d candidates", len(result.Files))
	}

	result, err = New(tempDir).Scan(Options{MinAccessed: 30 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Expected no candidates under a stricter access filter, got %d", len(result.Files))
	}
}

func TestScanSkipsNonRegularEntries(t *testing.T) {
	tempDir := t.TempDir()

	target := filepath.Join(tempDir, "target.txt")
	writeFileOfSize(t, target, 42)

	if err := os.MkdirAll(filepath.Join(tempDir, "emptydir"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(tempDir, "link")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	result, err := New(tempDir).Scan(Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.TotalSize != 42 {
		t.Errorf("Expected directories and symlinks to contribute nothing, total %d", result.TotalSize)
	}
	if len(result.Files) != 1 {
		t.Errorf("Expected only the regular file as candidate, got %d", len(result.Files))
	}
}

func TestScanMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(missing).Scan(Options{})
	if err == nil {
		t.Fatal("Expected error for missing root")
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Errorf("Expected *ScanError, got %T", err)
	}
}

func TestScanContinuesPastUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tempDir := t.TempDir()

	writeFileOfSize(t, filepath.Join(tempDir, "readable.txt"), 10)

	locked := filepath.Join(tempDir, "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	writeFileOfSize(t, filepath.Join(locked, "hidden.txt"), 5)
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("Failed to lock directory: %v", err)
	}
	defer os.Chmod(locked, 0755)

	var warnings bytes.Buffer
	s := New(tempDir)
	s.SetWarnWriter(&warnings)

	result, err := s.Scan(Options{})
	if err != nil {
		t.Fatalf("Expected soft failure only, got %v", err)
	}

	if len(result.Files) != 1 {
		t.Errorf("Expected the readable file to survive the scan, got %d candidates", len(result.Files))
	}
	if !strings.Contains(warnings.String(), "Skipping") {
		t.Errorf("Expected a skip diagnostic, got %q", warnings.String())
	}
}

package notice

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "THIRD_PARTY_NOTICES")
	content := "License for package(s): ['org.a:lib']\n\ntext\n"

	if err := Write(path, content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := Check(path, content); err != nil {
		t.Fatalf("Check() on freshly written file error = %v", err)
	}

	// Any single-byte mutation must fail the check.
	mutated := []byte(content)
	mutated[0] = 'l'
	if err := os.WriteFile(path, mutated, 0644); err != nil {
		t.Fatal(err)
	}
	if err := Check(path, content); !errors.Is(err, ErrOutOfDate) {
		t.Errorf("Check() after mutation error = %v, want ErrOutOfDate", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	err := Check(filepath.Join(t.TempDir(), "missing"), "content")
	if err == nil {
		t.Fatal("Check() expected error for missing notices file")
	}
	if errors.Is(err, ErrOutOfDate) {
		t.Error("a missing file is unreadable, not out of date")
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "THIRD_PARTY_NOTICES")
	if err := Write(path, "old content"); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, "new content"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new content" {
		t.Errorf("file = %q, want %q", data, "new content")
	}
}

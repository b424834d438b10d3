package notice

import (
	"errors"
	"fmt"
	"os"
)

// ErrOutOfDate is returned by Check when the on-disk document differs from
// the freshly rendered one.
var ErrOutOfDate = errors.New("third-party notices file is out of date")

// Write overwrites the notices file at path with content.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write notices file: %w", err)
	}
	return nil
}

// Check compares content byte-for-byte against the notices file at path.
// No diff detail is computed; the operator regenerates with --update.
func Check(path, content string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read notices file: %w", err)
	}
	if string(existing) != content {
		return fmt.Errorf("%w: %s", ErrOutOfDate, path)
	}
	return nil
}

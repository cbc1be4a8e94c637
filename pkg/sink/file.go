package sink

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileSink writes documents to the local filesystem, creating parent
// directories as needed.
type FileSink struct{}

// NewFile creates a filesystem sink.
func NewFile() *FileSink {
	return &FileSink{}
}

// Write writes content to the file at dest. Missing parent directories
// are created. An existing file is overwritten.
func (*FileSink) Write(_ context.Context, dest, content string) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create directory for %s", dest)
		}
	}
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", dest)
	}
	return nil
}

package app

import (
	"errors"
	"fmt"
	iofs "io/fs"

	"github.com/kk-code-lab/minigrep/internal/textutil"
)

// ConfigError reports an unusable command line. It is raised before any
// file is read.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// IoError reports that the input file could not be loaded.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	cause := e.Err
	var pathErr *iofs.PathError
	if errors.As(e.Err, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s: %v", textutil.SanitizeTerminalText(e.Path), cause)
}

func (e *IoError) Unwrap() error { return e.Err }

const (
	exitOK          = 0
	exitRuntimeFail = 1
	exitUsage       = 2
)

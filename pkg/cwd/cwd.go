// Package cwd provides current-working-directory providers: the single
// filesystem boundary consumed by the path engine's absolute resolver.
//
// A provider returns an opaque directory string for a given (on Windows,
// possibly per-drive) context. The engine treats the value as a snapshot
// and never re-reads it mid-operation.
package cwd

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoDirectory indicates a provider has no directory for the requested
// context.
var ErrNoDirectory = errors.New("no current directory")

// OS reports the process working directory via the host environment.
// Failure of the underlying lookup (directory deleted, permission
// denied) surfaces as an error.
type OS struct{}

// NewOS returns an OS-backed provider.
func NewOS() *OS {
	return &OS{}
}

// Cwd returns the process working directory. For a non-empty drive it
// follows the cmd.exe convention of a hidden `=D:` environment variable
// holding the last-used directory per drive, falling back to the drive
// root when unset.
func (*OS) Cwd(drive string) (string, error) {
	if drive != "" {
		if dir := os.Getenv("=" + strings.ToUpper(drive)); dir != "" {
			return dir, nil
		}

		return drive + `\`, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return dir, nil
}

// Static serves a fixed directory snapshot, for tests and callers that
// already know the working directory (e.g. a CLI `--cwd` flag).
type Static struct {
	drives map[string]string
	dir    string
}

// NewStatic returns a provider answering every default lookup with dir.
func NewStatic(dir string) *Static {
	return &Static{dir: dir}
}

// WithDrive adds a per-drive directory and returns the provider for
// chaining. Drive letters are matched case-insensitively.
func (s *Static) WithDrive(drive, dir string) *Static {
	if s.drives == nil {
		s.drives = map[string]string{}
	}

	s.drives[strings.ToUpper(drive)] = dir

	return s
}

// Cwd returns the configured directory for the requested context, or an
// error wrapping [ErrNoDirectory] when none was configured.
func (s *Static) Cwd(drive string) (string, error) {
	if drive != "" {
		if dir, ok := s.drives[strings.ToUpper(drive)]; ok {
			return dir, nil
		}

		return "", fmt.Errorf("%w for drive %s", ErrNoDirectory, drive)
	}

	if s.dir == "" {
		return "", ErrNoDirectory
	}

	return s.dir, nil
}

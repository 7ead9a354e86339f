package uikitscan

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMalformedConfig marks a project or library configuration that cannot be used.
	ErrMalformedConfig = errors.New("malformed configuration")
	// ErrMalformedPattern marks a safelist pattern that does not match prefix(colors)-shade.
	ErrMalformedPattern = errors.New("malformed safelist pattern")
	// ErrUnknownLibrary is returned for an icon library without a known path convention.
	ErrUnknownLibrary = errors.New("unknown icon library")
	// ErrNoTemplateCompiler is returned when component output is requested without a compiler.
	ErrNoTemplateCompiler = errors.New("no template compiler configured")
)

// ConfigError reports a configuration file that failed to load or decode.
// It matches ErrMalformedConfig with errors.Is.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("malformed configuration %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying load or decode error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMalformedConfig
}

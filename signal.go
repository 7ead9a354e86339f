package uikitscan

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan/internal/filelock"
)

// Signal keys read by the CSS framework configuration step.
const (
	SignalSafelist = "UIKIT_SAFELIST" // JSON list of SafelistPatternItem
	SignalStrategy = "UIKIT_STRATEGY" // JSON string, class merge strategy from the project config
	SignalPalette  = "UIKIT_PALETTE"  // JSON PaletteSignal
)

// SignalWriter publishes scan results to the downstream consumer.
type SignalWriter interface {
	Write(key string, value []byte) error
}

// PaletteSignal is the value published under SignalPalette.
type PaletteSignal struct {
	Brand  string   `json:"brand"`
	Gray   string   `json:"gray"`
	Colors []string `json:"colors"`
}

// EnvSignal publishes signals as environment variables of the current process.
// Use it when the consumer runs in the same process, after the scan.
type EnvSignal struct{}

// Write implements SignalWriter.
func (EnvSignal) Write(key string, value []byte) error {
	if err := os.Setenv(key, string(value)); err != nil {
		return errors.Errorf("set %s: %w", key, err)
	}
	return nil
}

// FileSignal publishes each signal as <Dir>/<key>.json. Files are replaced atomically
// under a side lock so a concurrently running consumer never reads a partial value.
type FileSignal struct {
	Dir string
}

// NewFileSignal returns a FileSignal writing below dir.
func NewFileSignal(dir string) FileSignal {
	return FileSignal{Dir: dir}
}

// Path returns the file holding key.
func (s FileSignal) Path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Write implements SignalWriter.
func (s FileSignal) Write(key string, value []byte) error {
	if err := filelock.LockedWriteFile(s.Path(key), value, 0o644); err != nil {
		return errors.Errorf("write signal %s: %w", key, err)
	}
	return nil
}

// Read returns the last value written for key. A signal never written reads as nil.
func (s FileSignal) Read(key string) ([]byte, error) {
	var data []byte
	err := filelock.With(s.Path(key), func() error {
		var err error
		// #nosec G304 - signal directory is configured by the caller
		data, err = os.ReadFile(s.Path(key))
		if os.IsNotExist(err) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, errors.Errorf("read signal %s: %w", key, err)
	}
	return data, nil
}

// Package filelock guards files shared between uikitscan processes: the icon cache
// directory and the signal files read by the CSS framework configuration.
package filelock

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gitlab.com/tozd/go/errors"
)

// Lock is a cross-process exclusive lock held on a side file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New returns an unlocked lock backed by the file at path.
// The directory of path is created on first Acquire.
func New(path string) *Lock {
	return &Lock{flock: flock.New(path), path: path}
}

// For returns the lock guarding target, kept next to it as "<target>.lock".
func For(target string) *Lock {
	return New(filepath.Clean(target) + ".lock")
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire blocks until the lock is held.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.Errorf("create lock directory for %s: %w", l.path, err)
	}
	if err := l.flock.Lock(); err != nil {
		return errors.Errorf("acquire lock %s: %w", l.path, err)
	}
	return nil
}

// TryAcquire takes the lock without blocking. It reports false when another
// process holds it.
func (l *Lock) TryAcquire() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return false, errors.Errorf("create lock directory for %s: %w", l.path, err)
	}
	ok, err := l.flock.TryLock()
	if err != nil {
		return false, errors.Errorf("try lock %s: %w", l.path, err)
	}
	return ok, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return errors.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}

// With runs fn while holding the lock guarding target.
func With(target string, fn func() error) (err error) {
	lock := For(target)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if rerr := lock.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}

// WriteFile replaces path with data through a temp file and rename, so readers
// see either the old or the new content.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return errors.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Errorf("rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}

// LockedWriteFile writes path atomically while holding its side lock.
func LockedWriteFile(path string, data []byte, perm os.FileMode) error {
	return With(path, func() error {
		return WriteFile(path, data, perm)
	})
}

package filelock

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForUsesSideFile(t *testing.T) {
	dir := t.TempDir()
	lock := For(filepath.Join(dir, "icons", ".cache"))
	assert.Equal(t, filepath.Join(dir, "icons", ".cache.lock"), lock.Path())
}

func TestAcquireRelease(t *testing.T) {
	lock := New(filepath.Join(t.TempDir(), "nested", "a.lock"))

	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Release())

	ok, err := lock.TryAcquire()
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, lock.Release())
}

func TestTryAcquireHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "held.lock")

	first := New(path)
	require.NoError(t, first.Acquire())
	defer func() { _ = first.Release() }()

	second := New(path)
	ok, err := second.TryAcquire()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "signal.json")

	require.NoError(t, WriteFile(path, []byte("one"), 0o644))
	require.NoError(t, WriteFile(path, []byte("two"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWithSerializesWriters(t *testing.T) {
	dir := t.TempDir()
	counter := filepath.Join(dir, "counter")
	require.NoError(t, os.WriteFile(counter, []byte("0"), 0o644))

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := With(counter, func() error {
				data, err := os.ReadFile(counter)
				if err != nil {
					return err
				}
				n, _ := strconv.Atoi(string(data))
				return WriteFile(counter, []byte(strconv.Itoa(n+1)), 0o644)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counter)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(workers), string(data))
}

package uikitscan

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// sourceCache serves file contents to the scanners. Every color-aware component
// walks the same file set, so contents are read once and kept in an LRU.
type sourceCache struct {
	cache  *lru.Cache[string, string]
	logger zerolog.Logger
	diags  *diagnostics
}

func newSourceCache(size int, logger zerolog.Logger, diags *diagnostics) *sourceCache {
	cache, err := lru.NewWithEvict(size, func(key string, _ string) {
		logger.Trace().Str("path", key).Msg("source evicted")
	})
	if err != nil {
		// Only possible with a non-positive size
		cache, _ = lru.New[string, string](1)
	}
	return &sourceCache{cache: cache, logger: logger, diags: diags}
}

// read returns the contents of path. A file that no longer exists reads as empty;
// any other failure is recorded and also reads as empty.
func (s *sourceCache) read(path string) string {
	if content, ok := s.cache.Get(path); ok {
		return content
	}

	// #nosec G304 - paths come from the project walk
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.diags.add(Diagnostic{Kind: DiagReadFailed, Path: path, Err: err})
			s.logger.Debug().Err(err).Str("path", path).Msg("read failed")
		}
		return ""
	}

	content := string(data)
	s.cache.Add(path, content)
	return content
}

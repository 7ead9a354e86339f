package uikitscan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompiler records its input and returns a fixed render function.
type fakeCompiler struct {
	source string
	err    error
}

func (c *fakeCompiler) Compile(_, source, _ string) (string, error) {
	c.source = source
	return "function render() {}", c.err
}

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<!-- generator: design tool -->
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <style>.a { fill: red; }</style>
  <path class="a" d="M0 0h24v24H0z"/>
</svg>
`

func TestMinifySVG(t *testing.T) {
	got, err := MinifySVG(sampleSVG)
	require.NoError(t, err)

	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><style>.a { fill: red; }</style><path class="a" d="M0 0h24v24H0z"/></svg>`,
		got)
}

func TestLoadSVG(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	inCache := filepath.Join(cacheDir, "home.svg")
	outside := filepath.Join(dir, "logo.svg")
	writeTree(t, dir, map[string]string{
		"cache/home.svg": sampleSVG,
		"logo.svg":       sampleSVG,
	})

	t.Run("not an svg", func(t *testing.T) {
		_, handled, err := LoadSVG(filepath.Join(dir, "app.vue"), SVGOptions{})
		require.NoError(t, err)
		assert.False(t, handled)
	})

	t.Run("url import outside the cache", func(t *testing.T) {
		_, handled, err := LoadSVG(outside, SVGOptions{CacheDir: cacheDir, Compiler: &fakeCompiler{}})
		require.NoError(t, err)
		assert.False(t, handled)
	})

	t.Run("url import inside the cache", func(t *testing.T) {
		compiler := &fakeCompiler{}
		code, handled, err := LoadSVG(inCache, SVGOptions{CacheDir: cacheDir, Compiler: compiler})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, "function render() {}\nexport default { render: render }\n", code)
		assert.Contains(t, compiler.source, `<component is="style">`)
		assert.NotContains(t, compiler.source, "<!--")
	})

	t.Run("raw import", func(t *testing.T) {
		code, handled, err := LoadSVG(outside+"?raw", SVGOptions{})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.True(t, strings.HasPrefix(code, `export default "<?xml`))
	})

	t.Run("skipsvgo keeps the source", func(t *testing.T) {
		compiler := &fakeCompiler{}
		_, handled, err := LoadSVG(outside+"?skipsvgo", SVGOptions{Compiler: compiler})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, compiler.source, "<!-- generator")
	})

	t.Run("default import component", func(t *testing.T) {
		compiler := &fakeCompiler{}
		_, handled, err := LoadSVG(outside, SVGOptions{DefaultImport: "component", NoMinify: true, Compiler: compiler})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Contains(t, compiler.source, "\n  <path")
	})

	t.Run("missing compiler", func(t *testing.T) {
		_, handled, err := LoadSVG(outside+"?component", SVGOptions{})
		assert.True(t, handled)
		assert.ErrorIs(t, err, ErrNoTemplateCompiler)
	})

	t.Run("missing file falls back", func(t *testing.T) {
		_, handled, err := LoadSVG(filepath.Join(dir, "gone.svg?component"), SVGOptions{Compiler: &fakeCompiler{}})
		require.NoError(t, err)
		assert.False(t, handled)
	})
}

func TestLoadSVG_GeneratedIsAlwaysInCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".generated", "icon.svg")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<svg/>"), 0o644))

	_, handled, err := LoadSVG(path, SVGOptions{Compiler: &fakeCompiler{}})
	require.NoError(t, err)
	assert.True(t, handled)
}

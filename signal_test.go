package uikitscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSignal(t *testing.T) {
	t.Setenv(SignalSafelist, "")

	require.NoError(t, EnvSignal{}.Write(SignalSafelist, []byte(`[{"pattern":"bg-(red)-(500)"}]`)))
	assert.Equal(t, `[{"pattern":"bg-(red)-(500)"}]`, os.Getenv(SignalSafelist))
}

func TestFileSignal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".uikit")
	signal := NewFileSignal(dir)

	value, err := signal.Read(SignalSafelist)
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, signal.Write(SignalSafelist, []byte("[]")))
	assert.FileExists(t, filepath.Join(dir, "UIKIT_SAFELIST.json"))

	value, err = signal.Read(SignalSafelist)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value))

	require.NoError(t, signal.Write(SignalSafelist, []byte(`[{"pattern":"bg-(red)-(500)"}]`)))
	value, err = signal.Read(SignalSafelist)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"pattern":"bg-(red)-(500)"}]`, string(value))
}

func TestBuildSafelist_FileSignal(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"src/App.vue": `<UDot color="red" />`})

	signal := NewFileSignal(filepath.Join(root, ".uikit"))
	_, err := BuildSafelist(Options{
		Root: root,
		Generators: map[string]SafelistGenerator{
			"UDot": TemplateGenerator([]PatternTemplate{{Pattern: "bg-({colors})-500"}}),
		},
		Signal: signal,
	})
	require.NoError(t, err)

	for _, key := range []string{SignalSafelist, SignalStrategy, SignalPalette} {
		value, err := signal.Read(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, value, key)
	}

	value, err := signal.Read(SignalSafelist)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"pattern":"bg-(red)-(500)"}]`, string(value))

	require.NoError(t, ClearSafelist(signal))
	value, err = signal.Read(SignalSafelist)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value))
}

package uikitscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files below root, keyed by slash-separated relative path.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// relPaths makes paths relative to root and slash-separated.
func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestIsStory(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "js story", path: "src/ui.button/Button.stories.js", expected: true},
		{name: "ts story", path: "src/ui.button/Button.stories.ts", expected: true},
		{name: "component", path: "src/ui.button/UButton.vue", expected: false},
		{name: "stories directory", path: "src/stories/index.js", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, isStory(tt.path), "isStory(%q)", tt.path)
		})
	}
}

func TestIconFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":                               "src/generated/\n",
		"uikit.config.yaml":                        "brand: blue\n",
		"src/App.vue":                              "",
		"src/main.ts":                              "",
		"src/util.js":                              "",
		"src/style.css":                            "",
		"src/App.stories.js":                       "",
		"src/generated/Gen.vue":                    "",
		"src/legacy/Old.vue":                       "",
		"node_modules/uikit/ui.button/UButton.vue": "",
	})

	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{
			name: "project sources and config",
			opts: Options{Root: root, Exclude: []string{"src/legacy/**"}},
			expected: []string{
				"src/App.vue", "src/main.ts", "src/util.js", "uikit.config.yaml",
			},
		},
		{
			name:     "storybook keeps only stories",
			opts:     Options{Root: root, Mode: ModeStorybook},
			expected: []string{"src/App.stories.js"},
		},
		{
			name: "library icons add the library sources",
			opts: Options{Root: root, Mode: ModeLibraryIcons, Exclude: []string{"src/legacy/**"}},
			expected: []string{
				"node_modules/uikit/ui.button/UButton.vue",
				"src/App.vue", "src/main.ts", "src/util.js", "uikit.config.yaml",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, stats, err := iconFiles(tt.opts.withDefaults())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, relPaths(t, root, files))
			assert.Equal(t, len(tt.expected), stats.FilesScanned)
		})
	}
}

func TestIconFiles_SkippedCounts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":            "src/generated/\n",
		"src/App.vue":           "",
		"src/generated/Gen.vue": "",
	})

	files, stats, err := iconFiles(Options{Root: root}.withDefaults())
	require.NoError(t, err)
	assert.Equal(t, []string{"src/App.vue"}, relPaths(t, root, files))
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestColorFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/App.vue":                              "",
		"src/main.ts":                              "",
		"node_modules/uikit/ui.button/UButton.vue": "",
		"node_modules/uikit/ui.button/config.yaml": "",
		"node_modules/uikit/ui.button/other.yaml":  "",
	})

	files, _, err := colorFiles(Options{Root: root}.withDefaults())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"src/App.vue",
		"node_modules/uikit/ui.button/UButton.vue",
		"node_modules/uikit/ui.button/config.yaml",
	}, relPaths(t, root, files))
}

func TestColorFiles_LibraryEnvSkipsProjectSources(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/ui.button/UButton.vue": "",
		"src/ui.button/config.yaml": "",
		"stories/Playground.vue":    "",
	})

	files, _, err := colorFiles(Options{Root: root, Env: EnvLibrary, Sources: []string{"stories"}}.withDefaults())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"src/ui.button/UButton.vue",
		"src/ui.button/config.yaml",
	}, relPaths(t, root, files))
}

func TestMissingDirectoriesYieldNothing(t *testing.T) {
	files, stats, err := iconFiles(Options{Root: t.TempDir()}.withDefaults())
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Zero(t, stats.FilesDiscovered)
}

func TestFindDefaultConfig(t *testing.T) {
	entry := ComponentRegistryEntry{Name: "UButton", Folder: "ui.button"}
	files := []string{
		filepath.Join("lib", "ui.button", "UButton.vue"),
		filepath.Join("lib", "ui.badge", "config.yaml"),
		filepath.Join("lib", "ui.button", "config.yaml"),
	}

	path, ok := findDefaultConfig(files, entry)
	require.True(t, ok)
	assert.Equal(t, files[2], path)

	_, ok = findDefaultConfig(files[:2], entry)
	assert.False(t, ok)
}

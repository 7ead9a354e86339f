package uikitscan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Mode selects which source files a scan looks at.
type Mode string

const (
	// ModeDefault scans the project source tree.
	ModeDefault Mode = ""
	// ModeStorybook scans storybook stories only; the safelist receives every palette color.
	ModeStorybook Mode = "storybook"
	// ModeLibraryIcons scans the library sources together with the project sources.
	ModeLibraryIcons Mode = "libraryIcons"
)

// ParseMode converts a flag or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDefault, ModeStorybook, ModeLibraryIcons:
		return Mode(s), nil
	case "default":
		return ModeDefault, nil
	}
	return ModeDefault, errors.Errorf("unknown mode %q (want \"\", storybook or libraryIcons)", s)
}

// Env tells whether the scan runs inside a consuming project or inside the library itself.
type Env string

const (
	// EnvProject is a project that depends on the library package.
	EnvProject Env = "project"
	// EnvLibrary is the library repository itself.
	EnvLibrary Env = "library"
)

// ParseEnv converts a flag or config value into an Env.
func ParseEnv(s string) (Env, error) {
	switch Env(s) {
	case "", EnvProject:
		return EnvProject, nil
	case EnvLibrary:
		return EnvLibrary, nil
	}
	return EnvProject, errors.Errorf("unknown env %q (want project or library)", s)
}

const (
	// LibraryPackage is the npm package name of the component library.
	LibraryPackage = "uikit"
	// DefaultConfigFile is the per-component default configuration file name.
	DefaultConfigFile = "config.yaml"
)

// DefaultProjectConfigFiles are the project configuration files looked up under the root.
var DefaultProjectConfigFiles = []string{"uikit.config.yaml", "uikit.config.yml", "uikit.config.toml"}

// PatternTemplate is the declarative form of a safelist generator entry.
// "{colors}" in Pattern is replaced with the pipe-joined color string.
type PatternTemplate struct {
	Pattern  string   `koanf:"pattern" yaml:"pattern"`
	Variants []string `koanf:"variants" yaml:"variants"`
}

// ComponentConfig holds project overrides for a single component.
type ComponentConfig struct {
	Defaults       map[string]any    `koanf:"defaults"`
	SafelistColors []string          `koanf:"safelistColors"`
	SafelistIcons  []string          `koanf:"safelistIcons"`
	Safelist       []PatternTemplate `koanf:"safelist"`
}

// ProjectConfig is the project-level configuration of the component library.
type ProjectConfig struct {
	Brand          string                     `koanf:"brand"`
	Gray           string                     `koanf:"gray"`
	Strategy       string                     `koanf:"strategy"`
	SafelistColors []string                   `koanf:"safelistColors"`
	Component      map[string]ComponentConfig `koanf:"component"`
}

// ComponentDefaultColor returns the color a component renders with when no prop is given.
// A component-level default wins over the global brand color.
func (c ProjectConfig) ComponentDefaultColor(name string) string {
	if comp, ok := c.Component[name]; ok {
		if color, ok := comp.Defaults["color"].(string); ok && color != "" {
			return color
		}
	}
	return c.Brand
}

// SafelistColorsFor returns the global and per-component "always include" colors.
func (c ProjectConfig) SafelistColorsFor(name string) []string {
	out := append([]string{}, c.SafelistColors...)
	return append(out, c.Component[name].SafelistColors...)
}

// FindProjectConfig returns the first project configuration file present under root,
// or an empty string when there is none.
func FindProjectConfig(root string) string {
	for _, name := range DefaultProjectConfigFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadProjectConfig parses a YAML or TOML project configuration file.
// A missing file yields an empty configuration; a file that fails to parse is fatal.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Errorf("stat project config %s: %w", path, err)
	}

	parser, err := parserFor(path)
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	}
	return nil, errors.Errorf("unsupported config format %q", filepath.Ext(path))
}

// Options is the immutable input of every scan. The zero value scans "./src" of a
// project that depends on the library package.
type Options struct {
	Root        string   // project root (default ".")
	Mode        Mode     // which files to scan
	Env         Env      // project or library repository
	Debug       bool     // emit per-file and per-icon diagnostics
	Sources     []string // project source directories relative to Root (default ["src"])
	Exclude     []string // doublestar patterns, relative to Root, never scanned
	ConfigFiles []string // project config files scanned for icon names (default DefaultProjectConfigFiles)
	LibraryDir  string   // library sources relative to Root (default node_modules/uikit, or src in library env)
	IconsRoot   string   // directory holding icon packages relative to Root (default node_modules)
	CacheDir    string   // icon cache override relative to Root
	Concurrency int      // parallel file reads and copies (default 8)
	CacheSize   int      // source files kept in memory (default 2048)

	Project    ProjectConfig
	Registry   Registry
	Palette    Palette
	Generators map[string]SafelistGenerator // project overrides keyed by component name
	Extractor  Extractor
	Signal     SignalWriter
	Logger     zerolog.Logger
}

// withDefaults fills zero fields and returns the completed copy.
func (o Options) withDefaults() Options {
	if o.Root == "" {
		o.Root = "."
	}
	if o.Env == "" {
		o.Env = EnvProject
	}
	if len(o.Sources) == 0 {
		o.Sources = []string{"src"}
	}
	if o.ConfigFiles == nil {
		o.ConfigFiles = DefaultProjectConfigFiles
	}
	if o.LibraryDir == "" {
		if o.Env == EnvLibrary {
			o.LibraryDir = "src"
		} else {
			o.LibraryDir = filepath.Join("node_modules", LibraryPackage)
		}
	}
	if o.IconsRoot == "" {
		o.IconsRoot = "node_modules"
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 8
	}
	if o.CacheSize <= 0 {
		o.CacheSize = 2048
	}
	if o.Registry == nil {
		o.Registry = defaultRegistry
	}
	if o.Palette == nil {
		o.Palette = defaultPalette
	}
	if o.Extractor == nil {
		o.Extractor = RegexExtractor{}
	}
	if o.Signal == nil {
		o.Signal = EnvSignal{}
	}
	return o
}

// log returns the diagnostic logger, silent unless Debug is set.
func (o Options) log() zerolog.Logger {
	if !o.Debug {
		return zerolog.Nop()
	}
	return o.Logger
}

func (o Options) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(o.Root, rel)
}

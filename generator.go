package uikitscan

import (
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// SafelistGenerator returns the utility patterns a component needs for the given
// colors, joined by "|" (e.g. "red|blue").
type SafelistGenerator func(colors string) []SafelistPatternItem

// colorsPlaceholder is replaced by the joined colors in a PatternTemplate.
const colorsPlaceholder = "{colors}"

// TemplateGenerator builds a generator from declarative pattern templates.
func TemplateGenerator(templates []PatternTemplate) SafelistGenerator {
	return func(colors string) []SafelistPatternItem {
		items := make([]SafelistPatternItem, 0, len(templates))
		for _, t := range templates {
			item := SafelistPatternItem{Pattern: strings.ReplaceAll(t.Pattern, colorsPlaceholder, colors)}
			if len(t.Variants) > 0 {
				item.Variants = append([]string(nil), t.Variants...)
			}
			items = append(items, item)
		}
		return items
	}
}

// DefaultConfig is the default configuration a library component ships in
// <folder>/config.yaml.
type DefaultConfig struct {
	Defaults map[string]any    `yaml:"defaults"`
	Safelist []PatternTemplate `yaml:"safelist"`
}

// LoadDefaultConfig reads a component default configuration. A missing file returns
// nil without error so callers can fall back to built-in defaults.
func LoadDefaultConfig(path string) (*DefaultConfig, error) {
	// #nosec G304 - path is derived from the library directory
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Errorf("read default config %s: %w", path, err)
	}

	var cfg DefaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &cfg, nil
}

// generators resolves the safelist generator of each component. A registered
// function wins over project templates, which win over the library default.
type generators struct {
	registered map[string]SafelistGenerator
	project    ProjectConfig
	registry   Registry
	files      []string // candidates for library default configs

	loaded map[string]*DefaultConfig
}

func newGenerators(o Options, files []string) *generators {
	return &generators{
		registered: o.Generators,
		project:    o.Project,
		registry:   o.Registry,
		files:      files,
		loaded:     make(map[string]*DefaultConfig),
	}
}

// lookup returns the generator of the named component, or nil when it has none.
func (g *generators) lookup(name string) (SafelistGenerator, error) {
	if fn, ok := g.registered[name]; ok && fn != nil {
		return fn, nil
	}

	if templates := g.project.Component[name].Safelist; len(templates) > 0 {
		return TemplateGenerator(templates), nil
	}

	cfg, err := g.defaultConfig(name)
	if err != nil {
		return nil, err
	}
	if cfg == nil || len(cfg.Safelist) == 0 {
		return nil, nil
	}
	return TemplateGenerator(cfg.Safelist), nil
}

func (g *generators) defaultConfig(name string) (*DefaultConfig, error) {
	if cfg, ok := g.loaded[name]; ok {
		return cfg, nil
	}

	var cfg *DefaultConfig
	if entry, ok := g.registry.Lookup(name); ok {
		if path, ok := findDefaultConfig(g.files, entry); ok {
			var err error
			if cfg, err = LoadDefaultConfig(path); err != nil {
				return nil, err
			}
		}
	}

	g.loaded[name] = cfg
	return cfg, nil
}

// generate invokes the component's generator with colors, returning nothing when
// the component has no generator.
func (g *generators) generate(name string, colors []string) ([]SafelistPatternItem, error) {
	fn, err := g.lookup(name)
	if err != nil || fn == nil {
		return nil, err
	}
	return fn(strings.Join(colors, "|")), nil
}

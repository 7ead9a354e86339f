package uikitscan

import (
	"encoding/json"

	"gitlab.com/tozd/go/errors"
)

// SafelistResult is the outcome of BuildSafelist.
type SafelistResult struct {
	Patterns    []SafelistPatternItem `json:"patterns"`
	Components  []ComponentColors     `json:"components"` // components that produced patterns
	Generated   int                   `json:"generated"`  // patterns before merging
	Palette     PaletteSignal         `json:"palette"`
	Strategy    string                `json:"strategy,omitempty"`
	Stats       ScanStats             `json:"stats"`
	Diagnostics []Diagnostic          `json:"diagnostics,omitempty"`
}

// BuildSafelist scans the project for colors handed to color-aware components, runs
// their safelist generators and publishes the merged patterns through opts.Signal.
//
// Components are processed in registry order. A component contributes only when its
// tag occurs somewhere and at least one palette color was found; nested components
// then receive the same colors whether or not they occur themselves. In storybook
// mode every component receives the whole palette.
func BuildSafelist(opts Options) (*SafelistResult, error) {
	o := opts.withDefaults()
	logger := o.log()

	files, stats, err := colorFiles(o)
	if err != nil {
		return nil, errors.Errorf("collect files: %w", err)
	}

	diags := &diagnostics{}
	src := newSourceCache(o.CacheSize, logger, diags)
	if o.Mode != ModeStorybook {
		prefetch(src, files, o.Concurrency)
	}

	gens := newGenerators(o, files)
	result := &SafelistResult{
		Palette: PaletteSignal{
			Brand:  o.Project.Brand,
			Gray:   o.Project.Gray,
			Colors: append([]string(nil), o.Palette...),
		},
		Strategy: o.Project.Strategy,
		Stats:    stats,
	}

	var raw []SafelistPatternItem
	for _, entry := range o.Registry.WithSafelist() {
		var found ComponentColors
		if o.Mode == ModeStorybook {
			found = ComponentColors{Component: entry.Name, Colors: append([]string(nil), o.Palette...), Present: true}
		} else {
			found = findComponentColors(files, entry, o, src)
		}

		if !found.Present || len(found.Colors) == 0 {
			continue
		}

		logger.Debug().
			Str("component", entry.Name).
			Strs("colors", found.Colors).
			Msg("component colors")

		items, err := gens.generate(entry.Name, found.Colors)
		if err != nil {
			return nil, err
		}
		raw = append(raw, items...)

		for _, name := range entry.Safelist.Nested {
			items, err := gens.generate(name, found.Colors)
			if err != nil {
				return nil, err
			}
			raw = append(raw, items...)
		}

		result.Components = append(result.Components, found)
	}

	merged, err := MergePatterns(raw)
	if err != nil {
		return nil, err
	}

	result.Patterns = merged
	result.Generated = len(raw)
	result.Diagnostics = diags.list()

	if err := publishSafelist(o.Signal, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ClearSafelist publishes an empty safelist.
func ClearSafelist(signal SignalWriter) error {
	if signal == nil {
		signal = EnvSignal{}
	}
	return signal.Write(SignalSafelist, []byte("[]"))
}

// publishSafelist writes every signal as a JSON value.
func publishSafelist(signal SignalWriter, result *SafelistResult) error {
	patterns := result.Patterns
	if patterns == nil {
		patterns = []SafelistPatternItem{}
	}

	safelist, err := json.Marshal(patterns)
	if err != nil {
		return errors.Errorf("encode safelist: %w", err)
	}
	strategy, err := json.Marshal(result.Strategy)
	if err != nil {
		return errors.Errorf("encode strategy: %w", err)
	}
	palette, err := json.Marshal(result.Palette)
	if err != nil {
		return errors.Errorf("encode palette: %w", err)
	}

	signals := []struct {
		key   string
		value []byte
	}{
		{SignalSafelist, safelist},
		{SignalStrategy, strategy},
		{SignalPalette, palette},
	}
	for _, s := range signals {
		if err := signal.Write(s.key, s.value); err != nil {
			return errors.Errorf("publish %s: %w", s.key, err)
		}
	}
	return nil
}

package uikitscan

import (
	"github.com/go-viper/mapstructure/v2"
	"gitlab.com/tozd/go/errors"
)

// IconVariantConfig selects the icon package and the file variant to copy.
type IconVariantConfig struct {
	Library string `mapstructure:"library"` // "@material-symbols", "bootstrap-icons", "heroicons"
	Weight  string `mapstructure:"weight"`  // "500"
	Style   string `mapstructure:"style"`   // "outlined", "24"
	Fill    bool   `mapstructure:"fill"`    // default fill when a reference does not say
}

// builtinIconDefaults is used when the library ships no icon default configuration.
var builtinIconDefaults = map[string]any{
	"library": "@material-symbols",
	"weight":  "500",
	"style":   "outlined",
	"fill":    false,
}

// ResolveIconVariantConfig deep-merges the project's global icon configuration onto the
// library default. ok is false when libraryDefault is nil; the returned value is then
// the zero config and the caller decides how to proceed.
func ResolveIconVariantConfig(global, libraryDefault map[string]any) (cfg IconVariantConfig, ok bool) {
	if libraryDefault == nil {
		return IconVariantConfig{}, false
	}

	merged := mergeConfig(libraryDefault, global)
	if err := decodeVariant(merged, &cfg); err != nil {
		return IconVariantConfig{}, false
	}
	return cfg, true
}

func decodeVariant(in map[string]any, out *IconVariantConfig) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Errorf("creating variant decoder: %w", err)
	}
	if err := decoder.Decode(in); err != nil {
		return errors.Errorf("decoding icon variant: %w", err)
	}
	return nil
}

// mergeConfig returns a new map holding every key of base, where scalar values are
// replaced by override values when present and nested maps are merged recursively.
// Neither input is modified.
func mergeConfig(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for key, baseVal := range base {
		overrideVal, hasOverride := override[key]

		if baseMap, ok := asMap(baseVal); ok {
			overrideMap, _ := asMap(overrideVal)
			out[key] = mergeConfig(baseMap, overrideMap)
			continue
		}

		if hasOverride && overrideVal != nil {
			out[key] = overrideVal
		} else {
			out[key] = baseVal
		}
	}
	return out
}

// asMap normalizes the two map shapes produced by the YAML and TOML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if s, ok := k.(string); ok {
				out[s] = val
			}
		}
		return out, true
	}
	return nil, false
}

package uikitscan

import (
	"golang.org/x/sync/errgroup"
)

// ComponentColors is the outcome of scanning the project for one component.
type ComponentColors struct {
	Component string   `json:"component"`
	Colors    []string `json:"colors"`  // palette order
	Present   bool     `json:"present"` // the component tag occurs in a scanned file
}

// FindComponentColors collects the palette colors handed to the component across files.
//
// The result is seeded with the component's default color (unless it is "grayscale") and
// the configured "always include" colors. The component's own default configuration adds
// every color it mentions, and each opening tag adds its literal or ternary color prop.
// Colors outside the palette are dropped.
func FindComponentColors(files []string, entry ComponentRegistryEntry, opts Options) ComponentColors {
	o := opts.withDefaults()
	src := newSourceCache(o.CacheSize, o.log(), &diagnostics{})
	return findComponentColors(files, entry, o, src)
}

func findComponentColors(files []string, entry ComponentRegistryEntry, o Options, src *sourceCache) ComponentColors {
	set := make(map[string]bool)

	if c := o.Project.ComponentDefaultColor(entry.Name); c != "" && c != grayscaleColor {
		set[c] = true
	}
	for _, c := range o.Project.SafelistColorsFor(entry.Name) {
		set[c] = true
	}

	present := false
	for _, file := range files {
		content := src.read(file)
		if content == "" {
			continue
		}

		if isDefaultComponentConfig(file, entry) {
			for _, c := range o.Extractor.ConfigColors(content) {
				set[c] = true
			}
		}

		colors, found := o.Extractor.ComponentColors(content, entry.Name)
		if !found {
			continue
		}
		present = true
		for _, c := range colors {
			set[c] = true
		}
	}

	resolveBrandAlias(set, o)

	return ComponentColors{
		Component: entry.Name,
		Colors:    o.Palette.Filter(set),
		Present:   present,
	}
}

// resolveBrandAlias replaces the "brand" token with the configured brand color
// when that color is itself a palette color.
func resolveBrandAlias(set map[string]bool, o Options) {
	brand := o.Project.Brand
	if !set[BrandColor] || brand == "" || brand == BrandColor || !o.Palette.Contains(brand) {
		return
	}
	delete(set, BrandColor)
	set[brand] = true
}

// prefetch reads files concurrently so later sequential passes hit the cache.
func prefetch(src *sourceCache, files []string, limit int) {
	var g errgroup.Group
	g.SetLimit(limit)
	for _, file := range files {
		g.Go(func() error {
			src.read(file)
			return nil
		})
	}
	_ = g.Wait()
}

package uikitscan

import (
	"regexp"
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SafelistPatternItem is one utility-class pattern handed to the CSS framework.
type SafelistPatternItem struct {
	Pattern  string   `json:"pattern"`
	Variants []string `json:"variants,omitempty"`
}

// bg-(red|blue)-600
var safelistPatternRe = regexp.MustCompile(`^(.*-)\((.*)\)-(\d+)$`)

// patternGroup is a parsed pattern while it is being merged
type patternGroup struct {
	prefix   string
	colors   []string
	shades   []string
	variants []string
}

func parsePattern(item SafelistPatternItem) (patternGroup, error) {
	m := safelistPatternRe.FindStringSubmatch(item.Pattern)
	if m == nil {
		return patternGroup{}, errors.Errorf("%w: %q", ErrMalformedPattern, item.Pattern)
	}
	return patternGroup{
		prefix:   m[1],
		colors:   strings.Split(m[2], "|"),
		shades:   []string{m[3]},
		variants: item.Variants,
	}, nil
}

func (g patternGroup) render() SafelistPatternItem {
	item := SafelistPatternItem{
		Pattern: g.prefix + "(" + strings.Join(g.colors, "|") + ")-(" + strings.Join(g.shades, "|") + ")",
	}
	if len(g.variants) > 0 {
		item.Variants = g.variants
	}
	return item
}

// MergePatterns compacts generator output into the smallest equivalent safelist.
//
// Items sharing a prefix, the same variants and at least one color are folded into the
// earliest such item, unioning colors and shades. Items that then have identical prefix,
// colors and shades are folded again, unioning variants. The result depends only on the
// input order.
func MergePatterns(items []SafelistPatternItem) ([]SafelistPatternItem, error) {
	var byColor []*patternGroup

	for _, item := range items {
		g, err := parsePattern(item)
		if err != nil {
			return nil, err
		}

		if target := findColorGroup(byColor, g); target != nil {
			target.colors = union(target.colors, g.colors)
			target.shades = union(target.shades, g.shades)
			continue
		}
		byColor = append(byColor, &g)
	}

	var byVariant []*patternGroup
	for _, g := range byColor {
		if target := findVariantGroup(byVariant, g); target != nil {
			target.variants = union(target.variants, g.variants)
			continue
		}
		byVariant = append(byVariant, g)
	}

	out := make([]SafelistPatternItem, 0, len(byVariant))
	for _, g := range byVariant {
		out = append(out, g.render())
	}
	return out, nil
}

func findColorGroup(groups []*patternGroup, g patternGroup) *patternGroup {
	for _, existing := range groups {
		if existing.prefix == g.prefix &&
			sameList(existing.variants, g.variants) &&
			overlaps(existing.colors, g.colors) {
			return existing
		}
	}
	return nil
}

func findVariantGroup(groups []*patternGroup, g *patternGroup) *patternGroup {
	for _, existing := range groups {
		if existing.prefix == g.prefix &&
			sameSet(existing.colors, g.colors) &&
			sameSet(existing.shades, g.shades) {
			return existing
		}
	}
	return nil
}

// union appends the values of add missing from base, keeping base order first
func union(base, add []string) []string {
	out := append([]string(nil), base...)
	for _, v := range add {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func overlaps(a, b []string) bool {
	for _, v := range b {
		if slices.Contains(a, v) {
			return true
		}
	}
	return false
}

// sameList compares ordered lists; nil and empty are equal
func sameList(a, b []string) bool {
	return slices.Equal(a, b) || (len(a) == 0 && len(b) == 0)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}

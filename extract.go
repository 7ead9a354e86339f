package uikitscan

import (
	"regexp"
	"strings"
)

// ExtractedIconReference is one icon requested by a source file.
type ExtractedIconReference struct {
	Name string `json:"name"` // lowercased icon name
	Fill bool   `json:"fill"` // filled variant
}

// Extractor finds icon and color references in file contents.
// Implementations must be safe for concurrent use.
type Extractor interface {
	// IconReferences returns the distinct icons referenced by content, in order of first
	// appearance. defaults supplies the fill used when a reference does not choose one.
	IconReferences(content string, defaults IconVariantConfig) []ExtractedIconReference
	// ComponentColors returns the color prop values handed to the named component and
	// whether the component appears at all.
	ComponentColors(content, component string) (colors []string, present bool)
	// ConfigColors returns every "color" value of a component default configuration.
	ConfigColors(content string) []string
}

// RegexExtractor is the default Extractor. It understands literal strings, simple
// ternaries and flat object literals; anything else is skipped.
type RegexExtractor struct{}

var _ Extractor = RegexExtractor{}

var (
	// iconKey: "x", leftIcon: 'x', ICON: "x"
	objectIconPattern = regexp.MustCompile(`(?i)\w*icon\w*\s*:\s*["']([^"'\s]+)["']`)

	siblingFillPattern = regexp.MustCompile(`\bfill\s*:\s*(true|false)\b`)

	// color: "red" in JS objects, color: red in YAML
	configColorPattern = regexp.MustCompile(`\bcolor\s*:\s*["']?([\w-]+)["']?`)
)

// IconReferences implements Extractor.
func (RegexExtractor) IconReferences(content string, defaults IconVariantConfig) []ExtractedIconReference {
	if content == "" {
		return nil
	}

	refs := newIconRefSet()

	for _, m := range objectIconPattern.FindAllStringSubmatchIndex(content, -1) {
		fill := defaults.Fill
		if start, end, ok := enclosingObject(content, m[0]); ok {
			if v, ok := siblingFill(content[start:end]); ok {
				fill = v
			}
		}
		refs.add(content[m[2]:m[3]], fill)
	}

	for _, tag := range findTags(content, IconComponent) {
		nameAttr, ok := tag.attr("name")
		if !ok {
			continue
		}
		names := attrValues(nameAttr)
		if len(names) == 0 {
			continue
		}

		mode := tagFill(tag)
		for _, name := range names {
			switch mode {
			case fillDefault:
				refs.add(name, defaults.Fill)
			case fillOn:
				refs.add(name, true)
			case fillOff:
				refs.add(name, false)
			case fillBoth:
				refs.add(name, false)
				refs.add(name, true)
			}
		}
	}

	return refs.items
}

// ComponentColors implements Extractor.
func (RegexExtractor) ComponentColors(content, component string) ([]string, bool) {
	tags := findTags(content, component)
	if len(tags) == 0 {
		return nil, false
	}

	var colors []string
	for _, tag := range tags {
		if a, ok := tag.attr("color"); ok {
			colors = append(colors, attrValues(a)...)
		}
	}
	return colors, true
}

// ConfigColors implements Extractor.
func (RegexExtractor) ConfigColors(content string) []string {
	var colors []string
	for _, m := range configColorPattern.FindAllStringSubmatch(content, -1) {
		colors = append(colors, m[1])
	}
	return colors
}

// iconRefSet keeps the first occurrence of each (name, fill) pair
type iconRefSet struct {
	seen  map[ExtractedIconReference]bool
	items []ExtractedIconReference
}

func newIconRefSet() *iconRefSet {
	return &iconRefSet{seen: make(map[ExtractedIconReference]bool)}
}

func (s *iconRefSet) add(name string, fill bool) {
	ref := ExtractedIconReference{Name: strings.ToLower(name), Fill: fill}
	if ref.Name == "" || s.seen[ref] {
		return
	}
	s.seen[ref] = true
	s.items = append(s.items, ref)
}

// enclosingObject returns the bounds of the innermost {...} around pos,
// or false when pos is not inside braces.
func enclosingObject(content string, pos int) (start, end int, ok bool) {
	depth := 0
	start = -1
	for i := pos - 1; i >= 0; i-- {
		switch content[i] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				start = i
			} else {
				depth--
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	depth = 0
	for i := pos; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return start, i + 1, true
			}
			depth--
		}
	}
	return start, len(content), true
}

// siblingFill looks for fill: true|false among the direct properties of an object
func siblingFill(object string) (bool, bool) {
	// Blank out nested objects so their properties are not mistaken for siblings
	flat := []byte(object)
	depth := 0
	for i, c := range flat {
		switch c {
		case '{':
			depth++
			if depth > 1 {
				flat[i] = ' '
			}
			continue
		case '}':
			depth--
			if depth > 0 {
				flat[i] = ' '
			}
			continue
		}
		if depth > 1 {
			flat[i] = ' '
		}
	}

	m := siblingFillPattern.FindSubmatch(flat)
	if m == nil {
		return false, false
	}
	return string(m[1]) == "true", true
}

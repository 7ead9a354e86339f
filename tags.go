package uikitscan

import (
	"regexp"
	"strings"
)

// tagAttr is one attribute of an opening component tag
type tagAttr struct {
	Name     string // without ":" or "v-bind:" prefix
	Bound    bool   // value is an expression
	Value    string
	HasValue bool
}

// componentTag is an opening component tag found in source text
type componentTag struct {
	Text  string // full tag text: <UIcon name="home" fill>
	Attrs []tagAttr
}

func (t componentTag) attr(name string) (tagAttr, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return tagAttr{}, false
}

var (
	attrPattern = regexp.MustCompile(`([:@#]?[A-Za-z_][\w:.-]*)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>/]+)))?`)

	// cond ? 'a' : 'b', where cond may hold its own literals: x === 'y' ? 'a' : 'b'
	ternaryPattern = regexp.MustCompile(`\?\s*['"]([^'"\s]+)['"]\s*:\s*['"]([^'"\s]+)['"]\s*$`)

	// 'a' inside a bound value
	quotedLiteralPattern = regexp.MustCompile(`^['"` + "`" + `]([^'"` + "`" + `\s]+)['"` + "`" + `]$`)
)

// findTags returns every opening tag of the named component, in source order.
// The tag name must match exactly, so <UIconGroup> is not a <UIcon>.
// Quotes are honored while looking for the closing '>', which lets bound
// expressions such as :name="a > b ? 'x' : 'y'" pass through.
func findTags(content, name string) []componentTag {
	var tags []componentTag
	open := "<" + name

	for pos := 0; pos < len(content); {
		idx := strings.Index(content[pos:], open)
		if idx < 0 {
			break
		}
		start := pos + idx
		bodyStart := start + len(open)
		pos = bodyStart

		if bodyStart < len(content) && !isTagBoundary(content[bodyStart]) {
			continue
		}

		end := scanTagEnd(content, bodyStart)
		body := strings.TrimSuffix(content[bodyStart:end], "/")
		text := content[start:end]
		if end < len(content) {
			text = content[start : end+1]
		}

		tags = append(tags, componentTag{Text: text, Attrs: parseAttrs(body)})
		pos = end
	}

	return tags
}

func isTagBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '/', '>':
		return true
	}
	return false
}

// scanTagEnd returns the index of the unquoted '>' closing the tag, or len(content)
func scanTagEnd(content string, from int) int {
	var quote byte
	for i := from; i < len(content); i++ {
		c := content[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return len(content)
}

func parseAttrs(body string) []tagAttr {
	var attrs []tagAttr
	for _, m := range attrPattern.FindAllStringSubmatchIndex(body, -1) {
		raw := body[m[2]:m[3]]
		a := tagAttr{Name: raw}

		switch {
		case strings.HasPrefix(raw, "v-bind:"):
			a.Name, a.Bound = strings.TrimPrefix(raw, "v-bind:"), true
		case strings.HasPrefix(raw, ":"):
			a.Name, a.Bound = strings.TrimPrefix(raw, ":"), true
		}

		for g := 2; g <= 4; g++ {
			if m[2*g] >= 0 {
				a.Value, a.HasValue = body[m[2*g]:m[2*g+1]], true
				break
			}
		}

		attrs = append(attrs, a)
	}
	return attrs
}

// attrValues resolves an attribute into the literal values it can take.
// A ternary yields both branches, a literal yields itself and anything
// else (identifiers, calls, templates) yields nothing.
func attrValues(a tagAttr) []string {
	if !a.HasValue {
		return nil
	}
	v := strings.TrimSpace(a.Value)

	if m := ternaryPattern.FindStringSubmatch(v); m != nil {
		return []string{m[1], m[2]}
	}

	if a.Bound {
		if m := quotedLiteralPattern.FindStringSubmatch(v); m != nil && !strings.Contains(m[1], "${") {
			return []string{m[1]}
		}
		return nil
	}

	if v == "" || strings.ContainsAny(v, " \t\n\r'\"") {
		return nil
	}
	return []string{v}
}

// fillMode is the fill variant requested by an icon reference
type fillMode int

const (
	fillDefault fillMode = iota
	fillOn
	fillOff
	fillBoth
)

// tagFill reads the fill attribute of an icon tag
func tagFill(t componentTag) fillMode {
	a, ok := t.attr("fill")
	if !ok {
		return fillDefault
	}
	if !a.HasValue {
		return fillOn
	}

	switch strings.TrimSpace(a.Value) {
	case "true", "":
		return fillOn
	case "false":
		if a.Bound {
			return fillOff
		}
		return fillOn
	}

	if a.Bound {
		return fillBoth
	}
	return fillOn
}

package uikitscan

import (
	"unicode"
	"unicode/utf8"
)

// ResolveComponent returns the import path of a library component, for
// on-demand component registration. ok is false for names the library does not own.
func ResolveComponent(registry Registry, name string) (from string, ok bool) {
	if registry == nil {
		registry = defaultRegistry
	}
	entry, ok := registry.Lookup(name)
	if !ok {
		return "", false
	}
	return LibraryPackage + "/" + entry.Folder, true
}

// ResolveDirective returns the import path of a library directive: vClickOutside
// and ClickOutside both resolve to uikit/directive.clickOutside. An empty name
// resolves to "".
func ResolveDirective(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == 'v' && size < len(name) {
		if next, _ := utf8.DecodeRuneInString(name[size:]); unicode.IsUpper(next) {
			name = name[size:]
			r, size = next, utf8.RuneLen(next)
		}
	}
	return LibraryPackage + "/directive." + string(unicode.ToLower(r)) + name[size:]
}

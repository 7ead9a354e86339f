package uikitscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveComponent(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		ok       bool
	}{
		{name: "UButton", expected: "uikit/ui.button", ok: true},
		{name: "UIcon", expected: "uikit/ui.image-icon", ok: true},
		{name: "UModalConfirm", expected: "uikit/ui.container-modal-confirm", ok: true},
		{name: "RouterLink", ok: false},
		{name: "ubutton", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, ok := ResolveComponent(nil, tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, from)
		})
	}
}

func TestResolveComponent_CustomRegistry(t *testing.T) {
	registry := Registry{{Name: "UChart", Folder: "ui.data-chart"}}

	from, ok := ResolveComponent(registry, "UChart")
	assert.True(t, ok)
	assert.Equal(t, "uikit/ui.data-chart", from)

	_, ok = ResolveComponent(registry, "UButton")
	assert.False(t, ok)
}

func TestResolveDirective(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "vClickOutside", expected: "uikit/directive.clickOutside"},
		{name: "ClickOutside", expected: "uikit/directive.clickOutside"},
		{name: "vTooltip", expected: "uikit/directive.tooltip"},
		{name: "visible", expected: "uikit/directive.visible"},
		{name: "v", expected: "uikit/directive.v"},
		{name: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDirective(tt.name))
		})
	}
}

func TestRegistry(t *testing.T) {
	registry := Registry(DefaultRegistry())

	entry, ok := registry.Lookup("UButton")
	assert.True(t, ok)
	assert.Equal(t, []string{"UIcon", "ULoader"}, entry.Safelist.Nested)
	assert.True(t, entry.Safelist.Enabled())

	entry, ok = registry.Lookup("UInput")
	assert.True(t, ok)
	assert.False(t, entry.Safelist.Enabled())

	for _, e := range registry.WithSafelist() {
		assert.True(t, e.Safelist.Enabled(), e.Name)
	}
}

func TestPalette(t *testing.T) {
	p := Palette(DefaultPalette())
	assert.True(t, p.Contains("brand"))
	assert.False(t, p.Contains("magenta"))
	assert.Equal(t, []string{"brand", "red", "blue"}, p.Filter(map[string]bool{"blue": true, "red": true, "brand": true, "magenta": true}))
}

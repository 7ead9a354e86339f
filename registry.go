package uikitscan

// SafelistSpec describes how a component takes part in color safelisting.
// The zero value means the component has no color-dependent classes.
type SafelistSpec struct {
	Self   bool     // component contributes its own colors
	Nested []string // colors found for the component are also handed to these components
}

// Enabled reports whether the component contributes to the safelist at all.
// A nested list implies the component contributes its own patterns as well.
func (s SafelistSpec) Enabled() bool {
	return s.Self || len(s.Nested) > 0
}

// ComponentRegistryEntry maps a component to its folder inside the library package.
type ComponentRegistryEntry struct {
	Name     string       // "UButton"
	Folder   string       // "ui.button"
	Safelist SafelistSpec // color safelisting behavior
}

// IconComponent is the tag name of the icon component.
const IconComponent = "UIcon"

func self() SafelistSpec                  { return SafelistSpec{Self: true} }
func nested(names ...string) SafelistSpec { return SafelistSpec{Nested: names} }

// defaultRegistry lists every library component in declaration order.
// Safelist processing walks it in this order so generated output is stable.
var defaultRegistry = []ComponentRegistryEntry{
	// Buttons & Links
	{Name: "UButton", Folder: "ui.button", Safelist: nested("UIcon", "ULoader")},
	{Name: "ULink", Folder: "ui.button-link", Safelist: self()},
	{Name: "UToggle", Folder: "ui.button-toggle"},
	{Name: "UToggleItem", Folder: "ui.button-toggle-item"},

	// Dropdowns
	{Name: "UDropdownButton", Folder: "ui.dropdown-button", Safelist: nested("UIcon")},
	{Name: "UDropdownBadge", Folder: "ui.dropdown-badge", Safelist: nested("UIcon")},
	{Name: "UDropdownLink", Folder: "ui.dropdown-link", Safelist: nested("UIcon")},
	{Name: "UDropdownList", Folder: "ui.dropdown-list"},

	// Form Inputs & Controls
	{Name: "UInput", Folder: "ui.form-input"},
	{Name: "UInputFile", Folder: "ui.form-input-file"},
	{Name: "UInputMoney", Folder: "ui.form-input-money"},
	{Name: "UInputSearch", Folder: "ui.form-input-search"},
	{Name: "UInputNumber", Folder: "ui.form-input-number"},
	{Name: "UInputRating", Folder: "ui.form-input-rating"},
	{Name: "UTextarea", Folder: "ui.form-textarea"},
	{Name: "USelect", Folder: "ui.form-select"},
	{Name: "UCheckbox", Folder: "ui.form-checkbox", Safelist: self()},
	{Name: "UCheckboxGroup", Folder: "ui.form-checkbox-group", Safelist: nested("UCheckbox")},
	{Name: "UCheckboxMultiState", Folder: "ui.form-checkbox-multi-state", Safelist: nested("UCheckbox")},
	{Name: "USwitch", Folder: "ui.form-switch", Safelist: nested("UIcon")},
	{Name: "URadio", Folder: "ui.form-radio", Safelist: self()},
	{Name: "URadioGroup", Folder: "ui.form-radio-group", Safelist: self()},
	{Name: "UCalendar", Folder: "ui.form-calendar"},
	{Name: "UDatePicker", Folder: "ui.form-date-picker"},
	{Name: "UDatePickerRange", Folder: "ui.form-date-picker-range"},
	{Name: "ULabel", Folder: "ui.form-label"},
	{Name: "UColorPicker", Folder: "ui.form-color-picker", Safelist: nested("URadio")},

	// Text & Content
	{Name: "UHeader", Folder: "ui.text-header", Safelist: self()},
	{Name: "UText", Folder: "ui.text-block"},
	{Name: "UAlert", Folder: "ui.text-alert", Safelist: nested("UIcon")},
	{Name: "UNotify", Folder: "ui.text-notify", Safelist: nested("UIcon")},
	{Name: "UMoney", Folder: "ui.text-money", Safelist: self()},
	{Name: "UFile", Folder: "ui.text-file"},
	{Name: "UFiles", Folder: "ui.text-files"},
	{Name: "UEmpty", Folder: "ui.text-empty"},
	{Name: "UBadge", Folder: "ui.text-badge", Safelist: self()},

	// Containers
	{Name: "UDivider", Folder: "ui.container-divider"},
	{Name: "UCol", Folder: "ui.container-col"},
	{Name: "URow", Folder: "ui.container-row"},
	{Name: "UGroup", Folder: "ui.container-group"},
	{Name: "UAccordion", Folder: "ui.container-accordion"},
	{Name: "UCard", Folder: "ui.container-card"},
	{Name: "UModal", Folder: "ui.container-modal"},
	{Name: "UModalConfirm", Folder: "ui.container-modal-confirm", Safelist: nested("UButton")},
	{Name: "UPage", Folder: "ui.container-page"},

	// Images and Icons
	{Name: "UIcon", Folder: "ui.image-icon", Safelist: self()},
	{Name: "UAvatar", Folder: "ui.image-avatar", Safelist: nested("UIcon")},

	// Data
	{Name: "UTable", Folder: "ui.data-table"},
	{Name: "UDataList", Folder: "ui.data-list"},

	// Navigation
	{Name: "UTab", Folder: "ui.navigation-tab"},
	{Name: "UTabs", Folder: "ui.navigation-tabs"},
	{Name: "UProgress", Folder: "ui.navigation-progress", Safelist: self()},
	{Name: "UPagination", Folder: "ui.navigation-pagination"},

	// Loaders and Skeletons
	{Name: "ULoader", Folder: "ui.loader", Safelist: self()},
	{Name: "ULoaderProgress", Folder: "ui.loader-progress", Safelist: self()},
	{Name: "ULoaderOverlay", Folder: "ui.loader-overlay", Safelist: self()},

	// Other
	{Name: "UDot", Folder: "ui.other-dot", Safelist: self()},
}

// DefaultRegistry returns a copy of the built-in component registry.
func DefaultRegistry() []ComponentRegistryEntry {
	out := make([]ComponentRegistryEntry, len(defaultRegistry))
	copy(out, defaultRegistry)
	return out
}

// Registry is an ordered, read-only view over registry entries.
type Registry []ComponentRegistryEntry

// Lookup finds a component entry by name.
func (r Registry) Lookup(name string) (ComponentRegistryEntry, bool) {
	for _, entry := range r {
		if entry.Name == name {
			return entry, true
		}
	}
	return ComponentRegistryEntry{}, false
}

// WithSafelist returns the entries taking part in color safelisting, in order.
func (r Registry) WithSafelist() []ComponentRegistryEntry {
	var out []ComponentRegistryEntry
	for _, entry := range r {
		if entry.Safelist.Enabled() {
			out = append(out, entry)
		}
	}
	return out
}

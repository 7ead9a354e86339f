package uikitscan

import (
	"fmt"
	"sort"
	"sync"
)

// DiagnosticKind classifies a non-fatal scan failure
type DiagnosticKind string

// Diagnostic kinds
const (
	DiagReadFailed      DiagnosticKind = "read-failed"      // source file could not be read
	DiagUnresolvedAsset DiagnosticKind = "unresolved-asset" // icon file missing from the icon package
	DiagCopyFailed      DiagnosticKind = "copy-failed"      // icon file could not be copied
)

// Diagnostic records a per-file or per-icon failure that did not stop the scan
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	Path string         `json:"path"`           // source file or icon source path
	Icon string         `json:"icon,omitempty"` // icon name for asset failures
	Err  error          `json:"-"`
}

func (d Diagnostic) String() string {
	subject := d.Path
	if d.Icon != "" {
		subject = fmt.Sprintf("icon %q (%s)", d.Icon, d.Path)
	}
	if d.Err == nil {
		return fmt.Sprintf("%s: %s", d.Kind, subject)
	}
	return fmt.Sprintf("%s: %s: %v", d.Kind, subject, d.Err)
}

// diagnostics collects diagnostics from concurrent workers
type diagnostics struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (d *diagnostics) add(diag Diagnostic) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = append(d.items, diag)
}

func (d *diagnostics) list() []Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Workers finish in any order
	out := append([]Diagnostic(nil), d.items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Icon < out[j].Icon
	})
	return out
}

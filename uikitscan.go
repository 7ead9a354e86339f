// Package uikitscan scans a project that consumes the uikit component library and
// prepares build-time assets for it.
//
// Two pipelines share the same file retrieval, configuration and extraction layers:
//
//   - Icons: find every icon name referenced through <UIcon> tags or "*icon*" object
//     keys, then copy only those SVG files from the icon package into a build cache.
//   - Safelist: find every palette color handed to a color-aware component, ask each
//     component's safelist generator for utility patterns and merge them into a
//     compact safelist for the CSS framework's purge step.
//
// # Icons
//
//	opts := uikitscan.Options{Root: ".", Mode: uikitscan.ModeDefault, Env: uikitscan.EnvProject}
//	result, err := uikitscan.ScanAndCacheIcons(opts)
//
// # Safelist
//
//	opts.Signal = uikitscan.NewFileSignal(".uikit")
//	result, err := uikitscan.BuildSafelist(opts)
//
// Both scans are best-effort text analysis. Only literal strings, simple ternaries and
// flat object literals are understood; computed names are skipped silently.
//
// # CLI Tool
//
// uikitscan also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/uikitscan/cmd/uikitscan@latest
package uikitscan

package uikitscan

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/uikitscan/internal/filelock"
)

// CachedIconFile is one icon asset placed in the cache directory.
type CachedIconFile struct {
	Name        string `json:"name"`
	Fill        bool   `json:"fill"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Copied      bool   `json:"copied"` // false when the destination already existed or the copy failed
}

// IconResult is the outcome of ScanAndCacheIcons.
type IconResult struct {
	CacheDir    string                   `json:"cacheDir"`
	Variant     IconVariantConfig        `json:"variant"`
	References  []ExtractedIconReference `json:"references"`
	Files       []CachedIconFile         `json:"files"`
	Copied      int                      `json:"copied"`
	Stats       ScanStats                `json:"stats"`
	Diagnostics []Diagnostic             `json:"diagnostics,omitempty"`
}

// iconPath maps a reference to a file below the icon package directory.
type iconPath func(v IconVariantConfig, ref ExtractedIconReference) string

var iconLibraries = map[string]iconPath{
	"@material-symbols": func(v IconVariantConfig, ref ExtractedIconReference) string {
		return filepath.Join("svg-"+v.Weight, v.Style, iconFileName(ref))
	},
	"bootstrap-icons": func(_ IconVariantConfig, ref ExtractedIconReference) string {
		return filepath.Join("icons", iconFileName(ref))
	},
	"heroicons": func(v IconVariantConfig, ref ExtractedIconReference) string {
		kind := "outline"
		if ref.Fill || strings.HasSuffix(ref.Name, "-fill") {
			kind = "solid"
		}
		return filepath.Join(v.Style, kind, ref.Name+".svg")
	},
}

// IconLibraries returns the icon packages with a known path convention.
func IconLibraries() []string {
	return []string{"@material-symbols", "bootstrap-icons", "heroicons"}
}

func iconFileName(ref ExtractedIconReference) string {
	if ref.Fill && !strings.HasSuffix(ref.Name, "-fill") {
		return ref.Name + "-fill.svg"
	}
	return ref.Name + ".svg"
}

// CacheDir returns the icon cache directory for the options.
func CacheDir(opts Options) string {
	return opts.withDefaults().cacheDir()
}

func (o Options) cacheDir() string {
	switch {
	case o.CacheDir != "":
		return o.path(o.CacheDir)
	case o.flatIcons():
		return o.path(filepath.Join("src", "assets", "icons"))
	case o.Env == EnvLibrary && o.Mode == ModeStorybook:
		return o.path(filepath.Join("src", "assets", "icons", ".cache"))
	}
	return o.path(filepath.Join(o.LibraryDir, "assets", "icons", ".cache"))
}

// flatIcons reports whether icons are stored as <name>.svg directly in the cache
// directory. The library keeps the icons its own components use this way.
func (o Options) flatIcons() bool {
	return o.Env == EnvLibrary && o.Mode == ModeLibraryIcons
}

// iconVariant merges the project icon defaults onto the library's icon configuration,
// falling back to the built-in defaults when the library ships none.
func iconVariant(o Options) (IconVariantConfig, error) {
	var library map[string]any
	if entry, ok := o.Registry.Lookup(IconComponent); ok {
		path := filepath.Join(o.path(o.LibraryDir), entry.Folder, DefaultConfigFile)
		cfg, err := LoadDefaultConfig(path)
		if err != nil {
			return IconVariantConfig{}, err
		}
		if cfg != nil && cfg.Defaults != nil {
			library = mergeConfig(builtinIconDefaults, cfg.Defaults)
		}
	}

	global := o.Project.Component[IconComponent].Defaults
	variant, ok := ResolveIconVariantConfig(global, library)
	if !ok {
		logger := o.log()
		logger.Debug().Msg("no library icon defaults, using built-in defaults")
		variant, ok = ResolveIconVariantConfig(global, builtinIconDefaults)
	}
	if !ok {
		return IconVariantConfig{}, errors.Errorf("%w: cannot decode icon defaults", ErrMalformedConfig)
	}
	if _, known := iconLibraries[variant.Library]; !known {
		return IconVariantConfig{}, errors.Errorf("%w: %q", ErrUnknownLibrary, variant.Library)
	}
	return variant, nil
}

// ScanAndCacheIcons finds every icon referenced by the project and copies the matching
// SVG files from the icon package into the cache directory.
//
// The cache directory is cleared first and then repopulated, under a lock shared with
// other uikitscan processes. An icon whose destination exists is not copied again.
// Unreadable files and missing or failed icon copies are reported as diagnostics
// without stopping the scan.
func ScanAndCacheIcons(opts Options) (*IconResult, error) {
	o := opts.withDefaults()
	logger := o.log()

	variant, err := iconVariant(o)
	if err != nil {
		return nil, err
	}

	cacheDir := o.cacheDir()
	result := &IconResult{CacheDir: cacheDir, Variant: variant}

	err = filelock.With(cacheDir, func() error {
		if err := os.RemoveAll(cacheDir); err != nil {
			return errors.Errorf("clear icon cache %s: %w", cacheDir, err)
		}

		files, stats, err := iconFiles(o)
		if err != nil {
			return errors.Errorf("collect files: %w", err)
		}
		result.Stats = stats

		diags := &diagnostics{}
		src := newSourceCache(o.CacheSize, logger, diags)

		result.References = collectIconReferences(o, src, files, variant)
		result.Files = resolveIconFiles(o, variant, cacheDir, result.References)
		result.Copied = copyIconFiles(o, result.Files, diags)
		result.Diagnostics = diags.list()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("cache", cacheDir).
		Int("references", len(result.References)).
		Int("copied", result.Copied).
		Msg("icons cached")

	return result, nil
}

// RemoveIcons deletes the icon cache directory.
func RemoveIcons(opts Options) error {
	o := opts.withDefaults()
	cacheDir := o.cacheDir()

	return filelock.With(cacheDir, func() error {
		if err := os.RemoveAll(cacheDir); err != nil {
			return errors.Errorf("remove icon cache %s: %w", cacheDir, err)
		}
		logger := o.log()
		logger.Debug().Str("cache", cacheDir).Msg("icon cache removed")
		return nil
	})
}

// collectIconReferences extracts references from files concurrently and returns them
// de-duplicated in file order, after the configured safelist icons.
func collectIconReferences(o Options, src *sourceCache, files []string, variant IconVariantConfig) []ExtractedIconReference {
	perFile := make([][]ExtractedIconReference, len(files))

	var g errgroup.Group
	g.SetLimit(o.Concurrency)
	for i, file := range files {
		g.Go(func() error {
			perFile[i] = o.Extractor.IconReferences(src.read(file), variant)
			return nil
		})
	}
	_ = g.Wait()

	refs := newIconRefSet()
	for _, name := range o.Project.Component[IconComponent].SafelistIcons {
		refs.add(name, false)
		refs.add(name, true)
	}
	for _, found := range perFile {
		for _, ref := range found {
			refs.add(ref.Name, ref.Fill)
		}
	}
	return refs.items
}

// resolveIconFiles maps references to source and destination paths, one entry per destination.
func resolveIconFiles(o Options, variant IconVariantConfig, cacheDir string, refs []ExtractedIconReference) []CachedIconFile {
	pathOf := iconLibraries[variant.Library]
	packageDir := filepath.Join(o.path(o.IconsRoot), variant.Library)

	seen := make(map[string]bool, len(refs))
	files := make([]CachedIconFile, 0, len(refs))
	for _, ref := range refs {
		rel := pathOf(variant, ref)

		dest := filepath.Join(cacheDir, variant.Library, rel)
		if o.flatIcons() {
			dest = filepath.Join(cacheDir, filepath.Base(rel))
		}
		if seen[dest] {
			continue
		}
		seen[dest] = true

		files = append(files, CachedIconFile{
			Name:        ref.Name,
			Fill:        ref.Fill,
			Source:      filepath.Join(packageDir, rel),
			Destination: dest,
		})
	}
	return files
}

// copyIconFiles copies every missing destination concurrently and returns the number copied.
func copyIconFiles(o Options, files []CachedIconFile, diags *diagnostics) int {
	logger := o.log()

	var g errgroup.Group
	g.SetLimit(o.Concurrency)
	for i := range files {
		f := &files[i]
		g.Go(func() error {
			copied, err := copyIfAbsent(f.Source, f.Destination)
			switch {
			case os.IsNotExist(err):
				diags.add(Diagnostic{Kind: DiagUnresolvedAsset, Path: f.Source, Icon: f.Name, Err: err})
				logger.Debug().Str("icon", f.Name).Str("source", f.Source).Msg("icon not found")
			case err != nil:
				diags.add(Diagnostic{Kind: DiagCopyFailed, Path: f.Source, Icon: f.Name, Err: err})
				logger.Debug().Err(err).Str("icon", f.Name).Msg("icon copy failed")
			case copied:
				f.Copied = true
				logger.Debug().Str("icon", f.Name).Msg("icon copied")
			}
			return nil
		})
	}
	_ = g.Wait()

	copied := 0
	for _, f := range files {
		if f.Copied {
			copied++
		}
	}
	return copied
}

// copyIfAbsent copies src to dst unless dst exists. Presence is the only check;
// an existing file is never compared or replaced.
func copyIfAbsent(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}

	// #nosec G304 - source is inside the icon package directory
	data, err := os.ReadFile(src)
	if err != nil {
		return false, err
	}
	if err := filelock.WriteFile(dst, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

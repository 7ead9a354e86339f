package uikitscan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"gitlab.com/tozd/go/errors"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files matched by the walk
	FilesScanned    int // Files handed to the extractor
	FilesSkipped    int // Files dropped by .gitignore or exclude patterns
}

func (s *ScanStats) add(other ScanStats) {
	s.FilesDiscovered += other.FilesDiscovered
	s.FilesScanned += other.FilesScanned
	s.FilesSkipped += other.FilesSkipped
}

var (
	sourceExtensions = []string{".vue", ".js", ".ts"}
	storyExtensions  = []string{".stories.js", ".stories.ts"}
	vueExtensions    = []string{".vue"}
)

// isStory reports whether path is a storybook story file
func isStory(path string) bool {
	return strings.Contains(filepath.Base(path), ".stories.")
}

// walkSpec describes one directory walk
type walkSpec struct {
	dir       string   // relative to root
	exts      []string // file name suffixes to keep
	stories   bool     // keep only stories (true) or drop stories (false)
	gitignore bool     // apply the root .gitignore
}

// fileWalker collects files below the project root
type fileWalker struct {
	root    string
	exclude []string
	ignore  *ignore.GitIgnore
	seen    map[string]bool
	files   []string
	stats   ScanStats
}

func newFileWalker(o Options) *fileWalker {
	w := &fileWalker{
		root:    o.Root,
		exclude: o.Exclude,
		seen:    make(map[string]bool),
	}

	// A missing .gitignore is fine
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(o.Root, ".gitignore")); err == nil {
		w.ignore = gi
	}

	return w
}

// walk expands a directory into matching files. Missing directories yield nothing.
func (w *fileWalker) walk(spec walkSpec) error {
	dir := spec.dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(w.root, dir)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	pattern := filepath.Join(dir, "**", "*")
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return errors.Errorf("glob pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, match := range matches {
		if !hasSuffix(match, spec.exts) || isStory(match) != spec.stories {
			continue
		}
		w.add(match, spec.gitignore)
	}

	return nil
}

// file adds a single file if it exists
func (w *fileWalker) file(rel string) {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, rel)
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		w.add(path, false)
	}
}

func (w *fileWalker) add(path string, useGitignore bool) {
	if w.seen[path] {
		return
	}
	w.seen[path] = true
	w.stats.FilesDiscovered++

	if w.shouldSkip(path, useGitignore) {
		w.stats.FilesSkipped++
		return
	}

	w.files = append(w.files, path)
	w.stats.FilesScanned++
}

// shouldSkip applies exclude patterns and, for project sources, the .gitignore
func (w *fileWalker) shouldSkip(path string, useGitignore bool) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range w.exclude {
		if ok, _ := doublestar.Match(filepath.ToSlash(pattern), rel); ok {
			return true
		}
	}

	if useGitignore && w.ignore != nil && w.ignore.MatchesPath(rel) {
		return true
	}

	return false
}

func hasSuffix(path string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}

// iconFiles returns the files scanned for icon references in the configured mode
func iconFiles(o Options) ([]string, ScanStats, error) {
	w := newFileWalker(o)

	var specs []walkSpec
	switch o.Mode {
	case ModeStorybook:
		for _, dir := range o.Sources {
			specs = append(specs, walkSpec{dir: dir, exts: storyExtensions, stories: true, gitignore: true})
		}
	case ModeLibraryIcons:
		specs = append(specs, walkSpec{dir: o.LibraryDir, exts: sourceExtensions})
		fallthrough
	default:
		for _, dir := range o.Sources {
			specs = append(specs, walkSpec{dir: dir, exts: sourceExtensions, gitignore: true})
		}
	}

	for _, spec := range specs {
		if err := w.walk(spec); err != nil {
			return nil, w.stats, err
		}
	}

	if o.Mode != ModeStorybook {
		for _, name := range o.ConfigFiles {
			w.file(name)
		}
	}

	return w.files, w.stats, nil
}

// colorFiles returns the component usages and default configurations scanned for colors
func colorFiles(o Options) ([]string, ScanStats, error) {
	w := newFileWalker(o)

	var specs []walkSpec
	if o.Env != EnvLibrary {
		for _, dir := range o.Sources {
			specs = append(specs, walkSpec{dir: dir, exts: vueExtensions, gitignore: true})
		}
	}
	specs = append(specs,
		walkSpec{dir: o.LibraryDir, exts: vueExtensions},
		walkSpec{dir: o.LibraryDir, exts: []string{string(filepath.Separator) + DefaultConfigFile}},
	)

	for _, spec := range specs {
		if err := w.walk(spec); err != nil {
			return nil, w.stats, err
		}
	}

	return w.files, w.stats, nil
}

// isDefaultComponentConfig reports whether path is the shipped default configuration
// of the component: <folder>/config.yaml.
func isDefaultComponentConfig(path string, entry ComponentRegistryEntry) bool {
	return filepath.Base(path) == DefaultConfigFile &&
		filepath.Base(filepath.Dir(path)) == entry.Folder
}

// findDefaultConfig picks the component's default configuration out of files
func findDefaultConfig(files []string, entry ComponentRegistryEntry) (string, bool) {
	for _, f := range files {
		if isDefaultComponentConfig(f, entry) {
			return f, true
		}
	}
	return "", false
}

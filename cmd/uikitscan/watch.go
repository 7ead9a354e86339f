package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yacobolo/uikitscan"
	"github.com/yacobolo/uikitscan/internal/logging"
	"github.com/yacobolo/uikitscan/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the safelist while source files change",
	Long: `Build the safelist and the icon cache once, then rebuild the safelist whenever
a changed or removed file touches a color prop or a safelist. On exit the icon cache is removed
and an empty safelist is published.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}
		logger := logging.GetLogger("watch")

		if err := runSafelist(cmd, opts); err != nil {
			return err
		}
		if err := runIcons(cmd, opts); err != nil {
			return err
		}

		rebuild := func(paths []string) {
			logger.Info().Strs("files", paths).Msg("sources changed, rebuilding safelist")
			if err := runSafelist(cmd, opts); err != nil {
				logger.Error().Err(err).Msg("safelist rebuild failed")
			}
		}

		w, err := watch.New(watch.Options{
			Debounce:   getDurationOr("debounce", 0),
			Extensions: []string{".js", ".ts", ".vue"},
			Match:      touchesSafelist,
		}, rebuild, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info().Strs("roots", watchRoots(opts)).Msg("watching for changes")
		if err := w.Run(ctx, watchRoots(opts)...); err != nil {
			return err
		}

		logger.Info().Msg("stopping, clearing icon cache and safelist")
		return clearAll(opts)
	},
}

func init() {
	watchCmd.Flags().Duration("debounce", 0, "Quiet period before rebuilding (default 200ms)")
}

func watchRoots(opts uikitscan.Options) []string {
	roots := make([]string, 0, len(opts.Sources))
	for _, s := range opts.Sources {
		if !filepath.IsAbs(s) {
			s = filepath.Join(opts.Root, s)
		}
		roots = append(roots, s)
	}
	return roots
}

// touchesSafelist reports whether a changed file can affect the safelist.
// A file that vanished before it could be read always can.
func touchesSafelist(path string) bool {
	// #nosec G304 - path comes from the file watcher
	data, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	s := string(data)
	return strings.Contains(s, "safelist") || strings.Contains(s, "color=") || strings.Contains(s, "color:")
}

package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan"
	"github.com/yacobolo/uikitscan/internal/logging"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Copy the referenced icons into the icon cache",
	Long: `Find every icon referenced through <UIcon> tags or "*icon*" object keys
and copy the matching SVG files from the icon package into the cache directory.
The cache directory is cleared first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		if remove, _ := cmd.Flags().GetBool("remove"); remove {
			return uikitscan.RemoveIcons(opts)
		}
		return runIcons(cmd, opts)
	},
}

func init() {
	iconsCmd.Flags().Bool("remove", false, "Only remove the icon cache")
}

func runIcons(cmd *cobra.Command, opts uikitscan.Options) error {
	done := logging.LogOperationStart(logging.GetLogger("icons"), "icons")
	defer done()

	result, err := uikitscan.ScanAndCacheIcons(opts)
	if err != nil {
		return errors.Errorf("icon scan failed: %w", err)
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}
	return uikitscan.WriteIconOutput(cmd.OutOrStdout(), result, format, useColors(cmd))
}

// runBuild mirrors a production build: safelist first, then the library's own
// icons in the library repository, then the project icons.
func runBuild(cmd *cobra.Command) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	if err := runSafelist(cmd, opts); err != nil {
		return err
	}

	if opts.Env == uikitscan.EnvLibrary && opts.Mode == uikitscan.ModeDefault {
		libraryOpts := opts
		libraryOpts.Mode = uikitscan.ModeLibraryIcons
		if err := runIcons(cmd, libraryOpts); err != nil {
			return err
		}
	}
	return runIcons(cmd, opts)
}

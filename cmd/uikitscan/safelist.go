package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan"
	"github.com/yacobolo/uikitscan/internal/logging"
)

var safelistCmd = &cobra.Command{
	Use:   "safelist",
	Short: "Build the color safelist for the CSS framework",
	Long: `Find the palette colors handed to color-aware components, run their
safelist generators and publish the merged patterns as signal files
(UIKIT_SAFELIST.json, UIKIT_STRATEGY.json, UIKIT_PALETTE.json).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}
		return runSafelist(cmd, opts)
	},
}

func runSafelist(cmd *cobra.Command, opts uikitscan.Options) error {
	done := logging.LogOperationStart(logging.GetLogger("safelist"), "safelist")
	defer done()

	result, err := uikitscan.BuildSafelist(opts)
	if err != nil {
		return errors.Errorf("safelist failed: %w", err)
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}
	return uikitscan.WriteSafelistOutput(cmd.OutOrStdout(), result, format, useColors(cmd))
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the icon cache and publish an empty safelist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}
		return clearAll(opts)
	},
}

func clearAll(opts uikitscan.Options) error {
	if err := uikitscan.RemoveIcons(opts); err != nil {
		return err
	}
	return uikitscan.ClearSafelist(opts.Signal)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/uikitscan"
)

var webTypesCmd = &cobra.Command{
	Use:   "web-types",
	Short: "Point package.json at the library's IDE component metadata",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		value, err := uikitscan.PatchWebTypes(opts)
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "library environment, package.json left untouched")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "web-types: %s\n", value)
		return nil
	},
}

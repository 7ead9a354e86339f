package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME...",
	Short: "Print the import path of library components",
	Long: `Resolve component names (UButton) or, with --directive, directive names
(vClickOutside) into the import path used for on-demand registration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		directive, _ := cmd.Flags().GetBool("directive")
		out := cmd.OutOrStdout()

		for _, name := range args {
			if directive {
				from := uikitscan.ResolveDirective(name)
				if from == "" {
					return errors.New("empty directive name")
				}
				fmt.Fprintf(out, "%s\t%s\n", name, from)
				continue
			}
			from, ok := uikitscan.ResolveComponent(nil, name)
			if !ok {
				return errors.Errorf("%s is not a library component", name)
			}
			fmt.Fprintf(out, "%s\t%s\n", name, from)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().Bool("directive", false, "Resolve directive names")
}

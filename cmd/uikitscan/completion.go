package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Print a shell completion script for uikitscan",
	Long: `Print a completion script covering the uikitscan subcommands and the scan
flags (--mode, --env, --sources, ...). Load it from your shell profile:

  source <(uikitscan completion bash)
  uikitscan completion fish > ~/.config/fish/completions/uikitscan.fish`,
	ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
	Args:        cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}

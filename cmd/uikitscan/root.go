package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/uikitscan/internal/logging"
	"github.com/yacobolo/uikitscan/internal/style"
)

// skipConfigAnnotation marks commands that run without loading .uikitscan.yaml,
// so init can replace a config file that no longer parses.
const skipConfigAnnotation = "uikitscan/skip-config"

var rootCmd = &cobra.Command{
	Use:   "uikitscan",
	Short: "Icon cache and CSS safelist builder for uikit projects",
	Long: `Scans a project that uses the uikit component library.
Copies only the icons the project references into the icon cache and
builds the color safelist the CSS framework needs to keep.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			logging.Setup(0, cmd.ErrOrStderr())
			return nil
		}
		if err := loadConfig(cmd); err != nil {
			return err
		}
		verbosity := 0
		if getBoolOr("verbose", false) {
			verbosity = 1
		}
		if getBoolOr("debug", false) {
			verbosity = 2
		}
		logging.Setup(verbosity, cmd.ErrOrStderr())
		return nil
	},
	// Without a subcommand, do what a production build needs
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBuild(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", defaultConfigPath, "Config file path")
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("debug", false, "Log every file, icon and component")
	f.Bool("quiet", false, "Only print the summary")
	f.Bool("color", false, "Force color output")
	f.String("output-format", "", "Output format: text|summary|json|markdown")
	addScanFlags(f)

	for flag, values := range map[string][]string{
		"mode":          {"storybook", "libraryIcons"},
		"env":           {"project", "library"},
		"output-format": {"text", "summary", "json", "markdown"},
	} {
		_ = rootCmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}

	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(safelistCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(webTypesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addScanFlags registers the flags that map onto uikitscan.Options.
func addScanFlags(f *pflag.FlagSet) {
	f.String("root", ".", "Project root")
	f.String("mode", "", "Scan mode: \"\"|storybook|libraryIcons")
	f.String("env", "project", "Environment: project|library")
	f.StringSlice("sources", []string{"src"}, "Project source directories")
	f.StringSlice("exclude", nil, "Glob patterns never scanned")
	f.String("library-dir", "", "Library sources (default node_modules/uikit, or src in library env)")
	f.String("icons-root", "node_modules", "Directory holding the icon packages")
	f.String("cache-dir", "", "Icon cache directory override")
	f.String("project-config", "", "Project config (default uikit.config.{yaml,yml,toml})")
	f.String("signal-dir", ".uikit", "Directory for safelist signal files, - for environment variables")
	f.Int("concurrency", 8, "Parallel file reads and copies")
}

func useColors(cmd *cobra.Command) bool {
	out, _ := cmd.OutOrStdout().(*os.File)
	return style.UseColors(getBoolOr("color", false), out)
}

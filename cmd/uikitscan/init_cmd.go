package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan/internal/filelock"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .uikitscan.yaml config file",
	Long: `Create a .uikitscan.yaml configuration file in the current directory with sensible
defaults. With --project a starter uikit.config.yaml is written as well.`,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		project, _ := cmd.Flags().GetBool("project")

		if err := writeStarter(cmd, defaultConfigPath, defaultConfig, force); err != nil {
			return err
		}
		if project {
			return writeStarter(cmd, "uikit.config.yaml", defaultProjectConfig, force)
		}
		return nil
	},
}

func writeStarter(cmd *cobra.Command, path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := filelock.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

const defaultConfig = `# uikitscan configuration

root: .
env: project              # project | library
mode: ""                  # "" | storybook | libraryIcons
sources:
  - src
exclude: []
icons-root: node_modules
# library-dir: node_modules/uikit
# cache-dir: node_modules/uikit/assets/icons/.cache
# project-config: uikit.config.yaml
signal-dir: .uikit        # - publishes to environment variables
concurrency: 8
output-format: text       # text | summary | json | markdown
debounce: 200ms
`

const defaultProjectConfig = `# uikit project configuration

brand: blue
gray: slate
strategy: merge
safelistColors: []

component:
  UIcon:
    defaults:
      library: "@material-symbols"
      weight: "500"
      style: outlined
      fill: false
    safelistIcons: []
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config files")
	initCmd.Flags().Bool("project", false, "Also write a starter uikit.config.yaml")
}

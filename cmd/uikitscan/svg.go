package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan"
	"github.com/yacobolo/uikitscan/internal/logging"
)

var svgCmd = &cobra.Command{
	Use:   "svg ID",
	Short: "Load an SVG import the way the bundler plugin does",
	Long: `Load an SVG module id such as icons/home.svg?component and print the module code.
Component output needs a template compiler: --compiler names a command that reads the
SVG template on stdin, receives the file name as its last argument and writes the
render function to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		defaultImport, _ := cmd.Flags().GetString("default-import")
		noMinify, _ := cmd.Flags().GetBool("no-minify")
		compiler, _ := cmd.Flags().GetString("compiler")

		svgOpts := uikitscan.SVGOptions{
			DefaultImport: defaultImport,
			NoMinify:      noMinify,
			CacheDir:      uikitscan.CacheDir(opts),
			Logger:        logging.GetLogger("svg"),
		}
		if compiler != "" {
			svgOpts.Compiler = commandCompiler{ctx: cmd.Context(), command: strings.Fields(compiler)}
		}

		code, handled, err := uikitscan.LoadSVG(args[0], svgOpts)
		if err != nil {
			return err
		}
		if !handled {
			return errors.Errorf("%s is left to the default loader", args[0])
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), code)
		return err
	},
}

func init() {
	svgCmd.Flags().String("default-import", "url", "Import type for ids without a query: url|raw|component")
	svgCmd.Flags().Bool("no-minify", false, "Keep comments and whitespace")
	svgCmd.Flags().String("compiler", "", "Template compiler command")
}

// commandCompiler runs an external template compiler.
type commandCompiler struct {
	ctx     context.Context
	command []string
}

func (c commandCompiler) Compile(_, source, filename string) (string, error) {
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	args := append(append([]string(nil), c.command[1:]...), filename)
	// #nosec G204 - the compiler command is chosen by the user
	cmd := exec.CommandContext(ctx, c.command[0], args...)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Errorf("%s: %w: %s", c.command[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

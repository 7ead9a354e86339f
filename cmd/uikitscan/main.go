// Command uikitscan prepares uikit icon caches and CSS safelists for a project.
package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/uikitscan/internal/style"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := style.UseColors(false, os.Stderr)
		fmt.Fprintf(os.Stderr, "%s %v\n", style.Render(style.Red, "Error:", useColors), err)
		os.Exit(1)
	}
}

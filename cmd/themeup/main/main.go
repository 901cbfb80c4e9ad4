package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/themeup/cmd/themeup"
	"github.com/arthur-debert/themeup/pkg/ui"
)

func main() {
	rootCmd := themeup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err, themeup.ErrorFormat(rootCmd, os.Stderr)))
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/themeup/cmd/themeup"
	"github.com/arthur-debert/themeup/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "THEMEUP",
		Section: "1",
		Source:  "themeup " + version.Version,
		Manual:  "themeup manual",
	}

	if err := doc.GenMan(themeup.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

// Package themeup implements the themeup command line.
package themeup

import (
	"fmt"
	"io"

	"github.com/arthur-debert/themeup/internal/version"
	"github.com/arthur-debert/themeup/pkg/core"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/arthur-debert/themeup/pkg/paths"
	"github.com/arthur-debert/themeup/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const usageTemplate = `{{boldUpper "usage:"}}
  {{.UseLine}}

{{boldUpper "flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`

type rootOptions struct {
	verbosity  int
	theme      string
	listThemes bool
	configDir  string
	hooks      []string
	variables  []string
	dryRun     bool
	createDirs bool
	preview    bool
	format     string
}

// NewRootCmd creates the themeup command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "themeup [flags]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.theme, "theme", "t", "", MsgFlagTheme)
	flags.BoolVarP(&opts.listThemes, "list-themes", "l", false, MsgFlagListThemes)
	flags.StringVarP(&opts.configDir, "config-dir", "c", "", MsgFlagConfigDir)
	flags.StringSliceVar(&opts.hooks, "hooks", nil, MsgFlagHooks)
	flags.StringArrayVarP(&opts.variables, "variable", "V", nil, MsgFlagVariable)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&opts.createDirs, "create-dirs", false, MsgFlagCreateDirs)
	flags.BoolVar(&opts.preview, "preview", false, MsgFlagPreview)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names, err := core.ListThemes(filesystem.NewOS(), paths.New(opts.configDir))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(ui.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.MarkFlagDirname("config-dir")

	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(usageTemplate)

	return rootCmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out, format)
	dirs := paths.New(opts.configDir)
	fsys := filesystem.NewOS()

	log.Debug().Str("config_dir", dirs.ConfigDir).Str("format", printer.Format().String()).Msg("resolved options")

	if opts.listThemes {
		names, err := core.ListThemes(fsys, dirs)
		if err != nil {
			return err
		}
		return printer.ThemeList(names)
	}

	// Keep stdout a single JSON document
	var hookOutput io.Writer = out
	if printer.Format() == ui.FormatJSON {
		hookOutput = cmd.ErrOrStderr()
	}

	result, err := core.Run(cmd.Context(), fsys, core.Options{
		Dirs:       dirs,
		Theme:      opts.theme,
		Hooks:      opts.hooks,
		HooksSet:   cmd.Flags().Changed("hooks"),
		Variables:  opts.variables,
		DryRun:     opts.dryRun,
		CreateDirs: opts.createDirs,
		HookOutput: hookOutput,
	})
	if err != nil {
		return err
	}

	if opts.preview {
		if err := printer.Palette(result.Theme); err != nil {
			return err
		}
	}
	return printer.Summary(result)
}

// ErrorFormat is the format fatal errors from cmd are printed in: the
// --format value when it parses, otherwise whatever stderr supports.
func ErrorFormat(cmd *cobra.Command, stderr io.Writer) ui.Format {
	format := ui.FormatAuto
	if value, err := cmd.Flags().GetString("format"); err == nil {
		if f, err := ui.ParseFormat(value); err == nil {
			format = f
		}
	}
	return ui.Resolve(format, stderr)
}

// Package commands implements the dartgen command line.
package commands

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
)

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Verbosity  int
	JSONLogs   bool
}

// NewRootCmd builds the dartgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &GlobalOptions{}

	root := &cobra.Command{
		Use:   "dartgen",
		Short: "Generate Dart source from Go types and model files",
		Long: `dartgen - Generate Dart source code.

Dart files are produced from two kinds of input:
  - Go packages: structs become json_serializable model classes,
    string types with constants become enums
  - Model files (YAML or TOML): a declarative description of Dart
    classes, enums, extensions and functions

Configuration is read from dartgen.toml (searched upward from the working
directory), ~/.config/dartgen/dartgen.toml and DARTGEN_* variables.

Examples:
  dartgen init                       # Write a sample model.toml
  dartgen render model.toml          # Render a model to stdout
  dartgen types -p ./api -o lib/api  # Generate Dart from a Go package
  dartgen check                      # Fail when generated files are stale`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.JSONLogs, opts.Verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to dartgen.toml (default: search upward, then user config)")
	flags.CountVarP(&opts.Verbosity, "verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv)")
	flags.BoolVar(&opts.JSONLogs, "json-logs", false, "Write logs as JSON")

	root.AddCommand(
		newTypesCmd(opts),
		newRenderCmd(opts),
		newCheckCmd(opts),
		newInitCmd(),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return root
}

// PrintError writes err and its hints to w.
func PrintError(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.WithWriter(w).Println(hint)
	}
}

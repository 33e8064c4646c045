package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/teranos/dartpoet/errors"
)

type renderOptions struct {
	output string
	watch  bool
}

func newRenderCmd(global *GlobalOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [model files...]",
		Short: "Render Dart files described by model files",
		Long: `Render the Dart files described by YAML (.yaml, .yml) or TOML (.toml)
model files. Without arguments the files listed in model.files are used.

A model file describes one or more Dart files: directives, classes, enums,
mixins, extensions, top-level properties and functions. Types are written
as Dart source; "Name@package:lib/lib.dart" imports the library for you.

Examples:
  dartgen render model.toml               # Print to stdout
  dartgen render api.yaml -o lib/src      # Write lib/src/<file>.dart
  dartgen render --watch                  # Re-render on every change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: output.dir, stdout when empty)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render when a model file or the config changes")
	return cmd
}

func runRender(cmd *cobra.Command, global *GlobalOptions, opts *renderOptions, args []string) error {
	s, err := newSession(cmd, global, "render")
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = s.cfg.Model.Files
	}
	if len(paths) == 0 {
		return errors.WithHint(errors.New("no model files to render"),
			"pass a model file, set model.files in dartgen.toml or run dartgen init")
	}

	build := func(ctx context.Context) error {
		files, err := s.modelFiles(paths)
		if err != nil {
			return err
		}
		return s.emit(ctx, files, firstNonEmpty(opts.output, s.cfg.Output.Dir))
	}

	ctx := cmd.Context()
	if err := build(ctx); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return s.watch(ctx, paths, build)
}

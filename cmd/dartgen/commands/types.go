package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/typegen"
)

type typesOptions struct {
	packages []string
	output   string
	watch    bool
}

func newTypesCmd(global *GlobalOptions) *cobra.Command {
	opts := &typesOptions{}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Generate Dart model classes from Go types",
		Long: `Generate Dart model classes from the exported types of Go packages.

One Dart file is written per package, named after the package in
snake_case. It handles:
  - Structs → immutable classes with a const constructor
  - String types with typed constants → enums
  - Untyped string constants → top-level constants
  - JSON tags for field naming, omitempty and pointers as optional fields
  - darttype:"Type" / darttype:",optional" / darttype:"-" overrides

With typegen.json_serializable (default) classes get @JsonSerializable(),
fromJson/toJson and a part directive for the generated .g.dart file.

Examples:
  dartgen types -p ./api                  # Print Dart for ./api
  dartgen types -p ./api -p ./events -o lib/models
  dartgen types --watch                   # Packages and output from dartgen.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(cmd, global, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.packages, "packages", "p", nil, "Go packages to process (default: typegen.packages)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: output.dir, stdout when empty)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when the Go sources or the config change")
	return cmd
}

func runTypes(cmd *cobra.Command, global *GlobalOptions, opts *typesOptions) error {
	s, err := newSession(cmd, global, "types")
	if err != nil {
		return err
	}

	patterns := opts.packages
	if len(patterns) == 0 {
		patterns = s.cfg.Typegen.Packages
	}
	if len(patterns) == 0 {
		return errors.WithHint(errors.New("no packages to generate"),
			"pass --packages ./api or set typegen.packages in dartgen.toml")
	}

	build := func(ctx context.Context) error {
		files, err := s.typeFiles(patterns)
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
	dirs, err := typegen.PackageDirs(patterns...)
	if err != nil {
		return err
	}
	return s.watch(ctx, dirs, build)
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/dartpoet/dart/spec"
	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/output"
)

type checkOptions struct {
	packages []string
	output   string
}

func newCheckCmd(global *GlobalOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [model files...]",
		Short: "Check that generated Dart files are up to date",
		Long: `Check that the Dart files in the output directory match the current
Go packages and model files.

Everything is generated into a temporary directory (and formatted when
format.enabled is set), then compared with the output directory. Stale
files are printed as unified diffs.

Exit codes:
  0 - Generated files are up to date
  1 - Files are out of date (diff shown) or the check failed

Examples:
  dartgen check                       # Inputs and output.dir from dartgen.toml
  dartgen check -p ./api -o lib/api   # Explicit package and directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.packages, "packages", "p", nil, "Go packages to check (default: typegen.packages)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Directory holding the generated files (default: output.dir)")
	return cmd
}

func runCheck(cmd *cobra.Command, global *GlobalOptions, opts *checkOptions, args []string) error {
	s, err := newSession(cmd, global, "check")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	dir := firstNonEmpty(opts.output, s.cfg.Output.Dir)
	if dir == "" {
		return errors.WithHint(errors.New("no output directory to check"),
			"pass --output or set output.dir in dartgen.toml")
	}

	packages := opts.packages
	if len(packages) == 0 {
		packages = s.cfg.Typegen.Packages
	}
	models := args
	if len(models) == 0 {
		models = s.cfg.Model.Files
	}
	if len(packages)+len(models) == 0 {
		return errors.WithHint(errors.New("no inputs to check"),
			"set typegen.packages or model.files in dartgen.toml")
	}

	var files []*spec.File
	if len(packages) > 0 {
		typeFiles, err := s.typeFiles(packages)
		if err != nil {
			return err
		}
		files = append(files, typeFiles...)
	}
	if len(models) > 0 {
		modelFiles, err := s.modelFiles(models)
		if err != nil {
			return err
		}
		files = append(files, modelFiles...)
	}

	tempDir, err := os.MkdirTemp("", "dartgen-check-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	rendered, err := output.Render(ctx, files)
	if err != nil {
		return err
	}
	paths, err := output.Write(tempDir, rendered)
	if err != nil {
		return err
	}
	if err := s.format(ctx, paths); err != nil {
		return err
	}

	result, err := output.CompareDirectories(tempDir, dir)
	if err != nil {
		return err
	}
	if result.UpToDate {
		pterm.Success.WithWriter(s.status).Printfln("%d generated files are up to date", len(rendered))
		return nil
	}

	pterm.Error.WithWriter(s.status).Printfln("%d generated files are out of date", len(result.Differences))
	for _, d := range result.Differences {
		if d.Missing {
			fmt.Fprintf(s.out, "missing: %s\n", filepath.Join(dir, d.File))
			continue
		}
		fmt.Fprint(s.out, d.Diff)
	}
	return errors.WithHint(
		errors.Newf("generated files are out of date: %v", result.Files()),
		"run dartgen types and dartgen render to update them")
}

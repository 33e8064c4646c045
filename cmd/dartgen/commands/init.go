package commands

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/dartpoet/config"
	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/model"
)

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample model file",
		Long: `Write a sample model file describing a json_serializable User class
and a Role enum. The format follows the extension: .toml (default),
.yaml or .yml.

Examples:
  dartgen init               # model.toml
  dartgen init api.yaml      # YAML model`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "model.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return writeSample(path, force, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func writeSample(path string, force bool, status io.Writer) error {
	format, err := model.FormatFromPath(path)
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
		}
	}

	var data []byte
	switch format {
	case model.FormatTOML:
		data, err = toml.Marshal(model.Sample())
	default:
		data, err = model.Encode(model.Sample(), format)
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode sample model")
	}

	if err := os.WriteFile(path, data, config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	pterm.Success.WithWriter(status).Printfln("Wrote %s, render it with: dartgen render %s", path, path)
	return nil
}

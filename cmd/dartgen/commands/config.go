package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/dartpoet/config"
	"github.com/teranos/dartpoet/errors"
)

func newConfigCmd(global *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the dartgen configuration",
		Long: `Display and validate the dartgen configuration.

Configuration sources (in order of precedence):
1. DARTGEN_* environment variables (e.g. DARTGEN_OUTPUT_DIR)
2. --config file, or the first dartgen.toml found walking up from
   the working directory
3. User config (~/.config/dartgen/dartgen.toml)
4. Default values

Examples:
  dartgen config show                 # Show the merged configuration
  dartgen config show --format yaml   # Same, as YAML
  dartgen config validate             # Validate the configuration
  dartgen config where                # Show which files are read`,
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, global, format)
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(global.ConfigPath); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Println("Configuration is valid")
			return nil
		},
	}

	where := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigWhere(cmd, global)
		},
	}

	cmd.AddCommand(show, validate, where)
	return cmd
}

func runConfigShow(cmd *cobra.Command, global *GlobalOptions, format string) error {
	cfg, err := config.Load(global.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# dartgen configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# dartgen configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}

func runConfigWhere(cmd *cobra.Command, global *GlobalOptions) error {
	out := cmd.OutOrStdout()
	status := func(path string) string {
		if path == "" {
			return "not found"
		}
		if _, err := os.Stat(path); err != nil {
			return path + " (missing)"
		}
		return path
	}

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	if global.ConfigPath != "" {
		fmt.Fprintf(out, "  2. [EXPLICIT] %s\n", status(global.ConfigPath))
	} else {
		fmt.Fprintf(out, "  2. [USER]     %s\n", status(config.UserConfigPath()))
		fmt.Fprintf(out, "  3. [PROJECT]  %s\n", status(config.ProjectConfigPath()))
	}

	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, config.EnvPrefix+"_") {
			env = append(env, strings.SplitN(kv, "=", 2)[0])
		}
	}
	sort.Strings(env)
	if len(env) == 0 {
		fmt.Fprintln(out, "  -  [ENV]      no "+config.EnvPrefix+"_* variables set")
	} else {
		fmt.Fprintf(out, "  -  [ENV]      %s\n", strings.Join(env, ", "))
	}
	return nil
}

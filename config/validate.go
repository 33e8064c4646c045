package config

import (
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/kballard/go-shellquote"

	"github.com/teranos/dartpoet/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Indent == "" {
		return errors.New("output.indent cannot be empty")
	}
	if strings.TrimSpace(c.Output.Indent) != "" {
		return errors.Newf("output.indent must contain only whitespace, got %q", c.Output.Indent)
	}

	if _, err := semver.NewConstraint(c.Dart.SDK); err != nil {
		return errors.Wrapf(err, "dart.sdk %q is not a version constraint", c.Dart.SDK)
	}

	for _, pattern := range c.Typegen.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return errors.Newf("typegen.exclude pattern %q is malformed", pattern)
		}
	}

	if c.Format.Enabled {
		args, err := shellquote.Split(c.Format.Command)
		if err != nil {
			return errors.Wrapf(err, "format.command %q cannot be parsed", c.Format.Command)
		}
		if len(args) == 0 {
			return errors.New("format.command cannot be empty when format.enabled is set")
		}
	}

	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}

// FormatCommand splits format.command into program and arguments.
func (c *Config) FormatCommand() ([]string, error) {
	args, err := shellquote.Split(c.Format.Command)
	if err != nil {
		return nil, errors.Wrapf(err, "format.command %q cannot be parsed", c.Format.Command)
	}
	if len(args) == 0 {
		return nil, errors.New("format.command cannot be empty")
	}
	return args, nil
}

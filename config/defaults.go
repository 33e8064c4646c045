package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/dartpoet/dart/code"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "")
	v.SetDefault("output.indent", code.DefaultIndent)
	v.SetDefault("output.header", []string{"GENERATED CODE - DO NOT MODIFY BY HAND"})

	v.SetDefault("dart.sdk", ">=3.0.0 <4.0.0")

	v.SetDefault("typegen.packages", []string{})
	v.SetDefault("typegen.json_serializable", true)
	v.SetDefault("typegen.exclude", []string{})

	v.SetDefault("model.files", []string{})

	v.SetDefault("format.enabled", false)
	v.SetDefault("format.command", "dart format")

	v.SetDefault("watch.debounce_ms", 300)
}

package model

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/dartpoet/errors"
)

// Format is the encoding of a model file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.WithHint(
		errors.Newf("cannot tell the format of model file %s", path),
		"model files end in .yaml, .yml or .toml",
	)
}

// Load reads and decodes a model file.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model file %s", path)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse model file %s", path)
	}
	return doc, nil
}

// Decode parses data. Unknown keys are rejected so that typos in a model do
// not silently drop declarations.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			// an empty document is an empty model
			if errors.Is(err, io.EOF) {
				return &doc, nil
			}
			return nil, errors.Wrap(err, "failed to parse model YAML")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse model TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, errors.Newf("unknown keys in model TOML: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.Newf("unsupported model format %q", format)
	}
	return &doc, nil
}

// Encode writes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "failed to encode model YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to encode model YAML")
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errors.Wrap(err, "failed to encode model TOML")
		}
	default:
		return nil, errors.Newf("unsupported model format %q", format)
	}
	return buf.Bytes(), nil
}

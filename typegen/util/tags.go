package util

import (
	"go/ast"
	"reflect"
	"strconv"
	"strings"
)

// FieldTagInfo contains parsed struct tag information for code generation
type FieldTagInfo struct {
	JSONName       string // Field name from json tag
	Omitempty      bool   // Has omitempty option
	CustomType     string // Type override from the language tag
	CustomOptional bool   // Force optional with <lang>type:",optional"
	Skip           bool   // Skip this field (json:"-" or <lang>type:"-")
}

// ParseFieldTags extracts the json tag and a language tag (e.g. "darttype")
// from a struct field tag.
//
// Supported tags:
//   - json:"name,omitempty" - Standard JSON field naming
//   - darttype:"CustomType" - Override the generated type
//   - darttype:"-" - Skip field in output
//   - darttype:"Type,optional" - Override type and force optional
//   - darttype:",optional" - Keep the inferred type, force optional
func ParseFieldTags(tag *ast.BasicLit, langTag string) FieldTagInfo {
	info := FieldTagInfo{}

	if jsonInfo := ParseJSONTag(tag); jsonInfo != nil {
		if jsonInfo.Skip {
			info.Skip = true
			return info
		}
		info.JSONName = jsonInfo.Name
		info.Omitempty = jsonInfo.Omitempty
	}

	name, options, skip := ParseCustomTag(tag, langTag)
	if skip {
		info.Skip = true
		return info
	}
	info.CustomType = name
	info.CustomOptional = options["optional"]
	return info
}

// JSONTagInfo holds parsed information from a json struct tag
type JSONTagInfo struct {
	Name      string // Field name from json tag
	Omitempty bool   // Has omitempty option
	Skip      bool   // Skip this field (json:"-")
}

// ParseJSONTag extracts json tag information from a struct field tag.
// Returns nil if there's no json tag.
func ParseJSONTag(tag *ast.BasicLit) *JSONTagInfo {
	st, ok := structTag(tag)
	if !ok {
		return nil
	}

	jsonTag, ok := st.Lookup("json")
	if !ok {
		return nil
	}

	info := &JSONTagInfo{}
	parts := strings.Split(jsonTag, ",")
	info.Name = parts[0]
	// json:"-," names the field "-"
	if info.Name == "-" && len(parts) == 1 {
		info.Skip = true
		return info
	}
	for _, part := range parts[1:] {
		if part == "omitempty" || part == "omitzero" {
			info.Omitempty = true
		}
	}
	return info
}

// ParseCustomTag extracts a custom tag (like darttype) from a struct field tag.
// Returns name, options map, and skip boolean.
func ParseCustomTag(tag *ast.BasicLit, tagName string) (name string, options map[string]bool, skip bool) {
	st, ok := structTag(tag)
	if !ok {
		return "", nil, false
	}

	customTag := st.Get(tagName)
	if customTag == "" {
		return "", nil, false
	}
	if customTag == "-" {
		return "", nil, true
	}

	parts := strings.Split(customTag, ",")
	name = strings.TrimSpace(parts[0])
	options = make(map[string]bool)
	for _, part := range parts[1:] {
		options[strings.TrimSpace(part)] = true
	}
	return name, options, false
}

func structTag(tag *ast.BasicLit) (reflect.StructTag, bool) {
	if tag == nil {
		return "", false
	}
	value, err := strconv.Unquote(tag.Value)
	if err != nil {
		return "", false
	}
	return reflect.StructTag(value), true
}

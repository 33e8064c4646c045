package util

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test helpers
// =============================================================================

func createTag(tag string) *ast.BasicLit {
	return &ast.BasicLit{
		Kind:  token.STRING,
		Value: "`" + tag + "`",
	}
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseExpr(src)
	require.NoError(t, err)
	return expr
}

func dartConfig() *TypeConverterConfig {
	return &TypeConverterConfig{
		TypeMapping: map[string]string{
			"string":    "String",
			"int":       "int",
			"int64":     "int",
			"bool":      "bool",
			"[]byte":    "String",
			"time.Time": "DateTime",
		},
		ArrayFormat:          func(elem string) string { return "List<" + elem + ">" },
		MapFormat:            func(key, val string) string { return "Map<" + key + ", " + val + ">" },
		NullableFormat:       func(typ string) string { return typ + "?" },
		StringMapUnknownType: "Map<String, dynamic>",
		UnknownType:          "dynamic",
		StringType:           "String",
	}
}

// =============================================================================
// ParseFieldTags tests
// =============================================================================

func TestParseFieldTags(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want FieldTagInfo
	}{
		{
			name: "simple json tag",
			tag:  `json:"field_name"`,
			want: FieldTagInfo{JSONName: "field_name"},
		},
		{
			name: "json with omitempty",
			tag:  `json:"field_name,omitempty"`,
			want: FieldTagInfo{JSONName: "field_name", Omitempty: true},
		},
		{
			name: "omitzero counts as omitempty",
			tag:  `json:"at,omitzero"`,
			want: FieldTagInfo{JSONName: "at", Omitempty: true},
		},
		{
			name: "json skip",
			tag:  `json:"-"`,
			want: FieldTagInfo{Skip: true},
		},
		{
			name: "json dash name",
			tag:  `json:"-,"`,
			want: FieldTagInfo{JSONName: "-"},
		},
		{
			name: "options without name",
			tag:  `json:",omitempty"`,
			want: FieldTagInfo{Omitempty: true},
		},
		{
			name: "custom type",
			tag:  `json:"meta" darttype:"Map<String, Object?>"`,
			want: FieldTagInfo{JSONName: "meta", CustomType: "Map<String, Object?>"},
		},
		{
			name: "custom type optional",
			tag:  `json:"meta" darttype:"Meta,optional"`,
			want: FieldTagInfo{JSONName: "meta", CustomType: "Meta", CustomOptional: true},
		},
		{
			name: "optional keeps inferred type",
			tag:  `darttype:",optional"`,
			want: FieldTagInfo{CustomOptional: true},
		},
		{
			name: "custom skip",
			tag:  `json:"secret" darttype:"-"`,
			want: FieldTagInfo{Skip: true},
		},
		{
			name: "other language tag is ignored",
			tag:  `json:"id" tstype:"string"`,
			want: FieldTagInfo{JSONName: "id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFieldTags(createTag(tt.tag), "darttype"))
		})
	}
}

func TestParseFieldTagsWithoutTag(t *testing.T) {
	assert.Equal(t, FieldTagInfo{}, ParseFieldTags(nil, "darttype"))
	assert.Nil(t, ParseJSONTag(nil))
	assert.Nil(t, ParseJSONTag(createTag(`yaml:"x"`)))
}

func TestParseCustomTag(t *testing.T) {
	name, options, skip := ParseCustomTag(createTag(`darttype:"Foo, optional ,readonly"`), "darttype")
	assert.Equal(t, "Foo", name)
	assert.Equal(t, map[string]bool{"optional": true, "readonly": true}, options)
	assert.False(t, skip)

	_, _, skip = ParseCustomTag(createTag(`darttype:"-"`), "darttype")
	assert.True(t, skip)
}

// =============================================================================
// ConvertGoType tests
// =============================================================================

func TestConvertGoType(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"string", "String"},
		{"int64", "int"},
		{"any", "dynamic"},
		{"interface{}", "dynamic"},
		{"User", "User"},
		{"*User", "User"},
		{"time.Time", "DateTime"},
		{"uuid.UUID", "UUID"},
		{"[]byte", "String"},
		{"[]string", "List<String>"},
		{"[]*User", "List<User?>"},
		{"[3]int", "List<int>"},
		{"map[string]int", "Map<String, int>"},
		{"map[string]*User", "Map<String, User?>"},
		{"map[string]interface{}", "Map<String, dynamic>"},
		{"map[string]any", "Map<String, dynamic>"},
		{"[][]string", "List<List<String>>"},
		{"chan int", "dynamic"},
		{"func()", "dynamic"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertGoType(parseExpr(t, tt.expr), dartConfig()))
		})
	}
}

func TestConvertGoTypeWithoutNullableFormat(t *testing.T) {
	conf := dartConfig()
	conf.NullableFormat = nil
	assert.Equal(t, "List<User>", ConvertGoType(parseExpr(t, "[]*User"), conf))
}

func TestIsPointerType(t *testing.T) {
	assert.True(t, IsPointerType(parseExpr(t, "*int")))
	assert.False(t, IsPointerType(parseExpr(t, "[]*int")))
}

// =============================================================================
// Casing and comment tests
// =============================================================================

func TestCasing(t *testing.T) {
	tests := []struct {
		in     string
		snake  string
		pascal string
		camel  string
	}{
		{"UserID", "user_id", "UserId", "userId"},
		{"created_at", "created_at", "CreatedAt", "createdAt"},
		{"pulseAsync", "pulse_async", "PulseAsync", "pulseAsync"},
		{"in-progress", "in_progress", "InProgress", "inProgress"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.snake, ToSnakeCase(tt.in))
			assert.Equal(t, tt.pascal, ToPascalCase(tt.in))
			assert.Equal(t, tt.camel, ToCamelCase(tt.in))
		})
	}
}

func TestExtractFieldComment(t *testing.T) {
	src := `package p

type T struct {
	// Name of the thing.
	//nolint:lll
	Name string // ignored, doc wins
	Age int // years
	/*
	 * Block comment
	 * over lines
	 */
	Bio string
	Bare int
}
`
	file, err := parser.ParseFile(token.NewFileSet(), "p.go", src, parser.ParseComments)
	require.NoError(t, err)
	fields := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec).Type.(*ast.StructType).Fields.List

	assert.Equal(t, []string{"Name of the thing."}, ExtractFieldComment(fields[0]))
	assert.Equal(t, []string{"years"}, ExtractFieldComment(fields[1]))
	assert.Equal(t, []string{"Block comment", "over lines"}, ExtractFieldComment(fields[2]))
	assert.Empty(t, ExtractFieldComment(fields[3]))
}

func TestCleanCommentText(t *testing.T) {
	assert.Equal(t, "hello", CleanCommentText("// hello"))
	assert.Equal(t, "doc", CleanCommentText("/** doc */"))
	assert.Equal(t, "", CleanCommentText("//"))
}

package dart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dartpoet/typegen"
)

const jobSource = `package api

import "time"

// Status is the lifecycle of a job.
type Status string

const (
	// StatusQueued waits for a worker.
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusDone    Status = "done" // finished
)

type Level int

type Tags []string

// Version of the API.
const Version = "1.2.0"

type Audit struct {
	CreatedBy string ` + "`json:\"created_by\"`" + `
	ID        string ` + "`json:\"id\"`" + `
}

// Job is a unit of work.
type Job struct {
	ID      string            ` + "`json:\"id\"`" + `
	Status  Status            ` + "`json:\"status\"`" + `
	Level   Level             ` + "`json:\"level,omitempty\"`" + `
	Started *time.Time        ` + "`json:\"started_at\"`" + `
	Labels  map[string]string ` + "`json:\"labels\" darttype:\",optional\"`" + `
	Tags    Tags              ` + "`json:\"tags\"`" + `
	Meta    any               ` + "`json:\"meta\" darttype:\"Map<String, Object?>\"`" + `
	Audit
}
`

func generate(t *testing.T, opts Options, srcs ...string) string {
	t.Helper()
	result, err := typegen.ParseSource("api", srcs...)
	require.NoError(t, err)
	file, err := NewGenerator(opts).GenerateFile(result)
	require.NoError(t, err)
	return file.String()
}

func TestGenerateJSONSerializable(t *testing.T) {
	out := generate(t, Options{
		Header:           []string{"GENERATED CODE - DO NOT MODIFY BY HAND"},
		JSONSerializable: true,
		NullSafe:         true,
	}, jobSource)

	assert.True(t, strings.HasPrefix(out,
		"// GENERATED CODE - DO NOT MODIFY BY HAND\n"+
			"// Source: api\n\n"+
			"import 'package:json_annotation/json_annotation.dart';\n\n"+
			"part 'api.g.dart';\n\n"), out)

	tests := []struct {
		name string
		want string
	}{
		{"enum", "/// Status is the lifecycle of a job.\nenum Status {\n"},
		{"enum value docs", "  /// StatusQueued waits for a worker.\n  @JsonValue('queued')\n  queued,\n"},
		{"last enum value", "  /// finished\n  @JsonValue('done')\n  done\n}"},
		{"class", "/// Job is a unit of work.\n@JsonSerializable()\nclass Job {\n"},
		{"required field", "  final String id;\n"},
		{"enum field", "  final Status status;\n"},
		{"alias resolves", "  final int? level;\n"},
		{"renamed pointer field", "  @JsonKey(name: 'started_at')\n  final DateTime? startedAt;\n"},
		{"forced optional", "  final Map<String, String>? labels;\n"},
		{"slice alias", "  final List<String> tags;\n"},
		{"custom type", "  final Map<String, Object?> meta;\n"},
		{"flattened embedded field", "  @JsonKey(name: 'created_by')\n  final String createdBy;\n"},
		{"constructor", "  const Job({\n    required this.id,\n    required this.status,\n    this.level,\n    this.startedAt,\n"},
		{"fromJson", "  factory Job.fromJson(Map<String, dynamic> json) =>\n      _$JobFromJson(json);\n"},
		{"toJson", "  Map<String, dynamic> toJson() => _$JobToJson(this);\n"},
		{"consts", "/// Version of the API.\nconst String version = '1.2.0';\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out, tt.want)
		})
	}

	// the outer ID wins over the promoted one
	job := out[strings.Index(out, "class Job"):]
	assert.Equal(t, 1, strings.Count(job, "final String id;"))
	assert.Equal(t, 1, strings.Count(out, "import "))
	assert.Less(t, strings.Index(out, "enum Status"), strings.Index(out, "class Audit"))
	assert.Less(t, strings.Index(out, "class Audit"), strings.Index(out, "class Job"))
}

func TestGeneratePlain(t *testing.T) {
	out := generate(t, Options{}, jobSource)

	assert.True(t, strings.HasPrefix(out, "// Source: api\n\n"), out)
	assert.NotContains(t, out, "import ")
	assert.NotContains(t, out, "part ")
	assert.NotContains(t, out, "@")
	assert.NotContains(t, out, "required")
	assert.NotContains(t, out, "?;")
	assert.Contains(t, out, "  final DateTime startedAt;\n")
	assert.Contains(t, out, "  const Job({\n    this.id,\n")
	assert.Contains(t, out, "enum Status {\n\n  /// StatusQueued waits for a worker.\n  queued,\n  running,\n")
	assert.NotContains(t, out, "fromJson")
}

func TestGenerateWithoutStructsHasNoPart(t *testing.T) {
	src := "package api\n\ntype Color string\n\nconst ColorRed Color = \"red\"\n"
	out := generate(t, Options{JSONSerializable: true, NullSafe: true}, src)

	assert.NotContains(t, out, "part ")
	assert.Contains(t, out, "import 'package:json_annotation/json_annotation.dart';\n")
	assert.Contains(t, out, "  @JsonValue('red')\n  red\n}")
}

func TestGenerateKeywords(t *testing.T) {
	src := `package api

type Op string

const (
	OpNew  Op = "new"
	OpDash Op = "a-b"
	OpLow  Op = "a_b"
)

type Rule struct {
	Default string ` + "`json:\"default\"`" + `
	Class   string
}
`
	out := generate(t, Options{JSONSerializable: true, NullSafe: true}, src)

	assert.Contains(t, out, "  @JsonValue('new')\n  new_,\n")
	assert.Contains(t, out, "  @JsonValue('a-b')\n  aB,\n")
	assert.Contains(t, out, "  @JsonValue('a_b')\n  low\n")
	assert.Contains(t, out, "  @JsonKey(name: 'default')\n  final String default_;\n")
	assert.Contains(t, out, "  @JsonKey(name: 'Class')\n  final String class_;\n")
}

func TestEnumEntryName(t *testing.T) {
	tests := []struct {
		value string
		name  string
		seen  map[string]bool
		want  string
	}{
		{"in_progress", "StatusInProgress", nil, "inProgress"},
		{"DONE", "StatusDone", nil, "done"},
		{"1st", "StatusFirst", nil, "first"},
		{"switch", "StatusSwitch", nil, "switch_"},
		{"a-b", "StatusAb", map[string]bool{"aB": true}, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			seen := tt.seen
			if seen == nil {
				seen = map[string]bool{}
			}
			got := enumEntryName("Status", typegen.EnumValue{Name: tt.name, Value: tt.value}, seen)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileName(t *testing.T) {
	g := NewGenerator(Options{})
	assert.Equal(t, "pulse_async.dart", g.FileName(&typegen.Result{PackageName: "pulseAsync"}))
	assert.Equal(t, "dart", g.Language())
	assert.Equal(t, "dart", g.FileExtension())
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := Options{JSONSerializable: true, NullSafe: true}
	first := generate(t, opts, jobSource)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, generate(t, opts, jobSource))
	}
}

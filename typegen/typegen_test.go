package typegen

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiSource = `package api

import "time"

// Status is the lifecycle of a job.
type Status string

const (
	// StatusQueued waits for a worker.
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusDone    Status = "done" // finished
)

// Level is a plain alias without constants.
type Level int

// Version of the API.
const Version = "1.2.0"

const internalName = "hidden"

// Job is a unit of work.
type Job struct {
	ID        string            ` + "`json:\"id\"`" + `
	Status    Status            ` + "`json:\"status\"`" + `
	Level     Level             ` + "`json:\"level,omitempty\"`" + `
	Started   *time.Time        ` + "`json:\"started_at\"`" + `
	Labels    map[string]string ` + "`json:\"labels\" darttype:\",optional\"`" + `
	Secret    string            ` + "`json:\"-\"`" + `
	Hidden    string            ` + "`darttype:\"-\"`" + `
	Meta      any               ` + "`json:\"meta\" darttype:\"Map<String, Object?>\"`" + `
	internal  int
	Audit
	Owner     ` + "`json:\"owner\"`" + `
}

type Audit struct {
	CreatedBy string ` + "`json:\"created_by\"`" + `
}

type Owner struct {
	Name string
}

type Box[T any] struct {
	Value T
}

type hidden struct{}
`

func TestParseSource(t *testing.T) {
	result, err := ParseSource("api", apiSource)
	require.NoError(t, err)

	assert.Equal(t, "api", result.PackageName)
	assert.Empty(t, result.ImportPath)
	assert.Equal(t, []string{"Status", "Audit", "Job", "Owner"}, result.TypeNames())
	assert.False(t, result.IsEmpty())
	assert.Contains(t, result.Aliases, "Level")
	assert.NotContains(t, result.Aliases, "Box")
}

func TestParseSourceEnums(t *testing.T) {
	result, err := ParseSource("api", apiSource)
	require.NoError(t, err)
	require.Len(t, result.Enums, 1)

	status := result.Enums[0]
	assert.Equal(t, "Status", status.Name)
	assert.Equal(t, []string{"Status is the lifecycle of a job."}, status.Doc)
	assert.Equal(t, []EnumValue{
		{Name: "StatusQueued", Value: "queued", Doc: []string{"StatusQueued waits for a worker."}},
		{Name: "StatusRunning", Value: "running"},
		{Name: "StatusDone", Value: "done", Doc: []string{"finished"}},
	}, status.Values)
}

func TestParseSourceConsts(t *testing.T) {
	result, err := ParseSource("api", apiSource)
	require.NoError(t, err)
	assert.Equal(t, []Const{{Name: "Version", Value: "1.2.0", Doc: []string{"Version of the API."}}}, result.Consts)
}

func TestParseSourceStructFields(t *testing.T) {
	result, err := ParseSource("api", apiSource)
	require.NoError(t, err)

	job, ok := result.FindStruct("Job")
	require.True(t, ok)
	assert.Equal(t, []string{"Job is a unit of work."}, job.Doc)

	names := make([]string, 0, len(job.Fields))
	for _, f := range job.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"ID", "Status", "Level", "Started", "Labels", "Meta", "Audit", "Owner"}, names)

	byName := map[string]Field{}
	for _, f := range job.Fields {
		byName[f.Name] = f
	}

	tests := []struct {
		field    string
		wire     string
		optional bool
		embedded bool
	}{
		{"ID", "id", false, false},
		{"Level", "level", true, false},
		{"Started", "started_at", true, false},
		{"Labels", "labels", true, false},
		{"Audit", "Audit", false, true},
		{"Owner", "owner", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := byName[tt.field]
			assert.Equal(t, tt.wire, f.WireName())
			assert.Equal(t, tt.optional, f.Optional())
			assert.Equal(t, tt.embedded, f.Embedded)
		})
	}
	assert.Equal(t, "Map<String, Object?>", byName["Meta"].CustomType)
	_, isStar := byName["Started"].Type.(*ast.StarExpr)
	assert.True(t, isStar)
}

func TestParseSourceAcrossFiles(t *testing.T) {
	types := "package api\n\ntype Color string\n"
	consts := "package api\n\nconst (\n\tRed Color = \"red\"\n\tBlue Color = \"blue\"\n)\n"

	result, err := ParseSource("api", types, consts)
	require.NoError(t, err)
	require.Len(t, result.Enums, 1)
	assert.Len(t, result.Enums[0].Values, 2)
	assert.Equal(t, Position{File: "api_0.go", Line: 3}, result.TypePositions["Color"])
}

func TestParseSourceErrors(t *testing.T) {
	_, err := ParseSource("api", "package api\n\ntype {")
	assert.Error(t, err)

	_, err = ParseSource("api", "package other\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares package other, expected api")
}

func TestExclude(t *testing.T) {
	result, err := ParseSource("api", apiSource)
	require.NoError(t, err)

	result.Exclude([]string{"Au*", "Version"})
	assert.Equal(t, []string{"Status", "Job", "Owner"}, result.TypeNames())
	assert.Empty(t, result.Consts)

	result.Exclude(nil)
	assert.Len(t, result.TypeNames(), 3)
}

func TestEmptyResult(t *testing.T) {
	result, err := ParseSource("empty", "package empty\n\nfunc F() {}\n")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	_, ok := result.FindStruct("F")
	assert.False(t, ok)
}

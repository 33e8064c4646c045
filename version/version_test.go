package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"dev", "dartgen dev (commit abcdef123, built now)"},
		{"1.2.3", "dartgen 1.2.3 (commit abcdef123, built now)"},
		{"v0.4.0-rc.1", "dartgen v0.4.0-rc.1 (commit abcdef123, built now)"},
		{"nightly", "dartgen dev (commit abcdef123, built now)"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			info := Info{Version: tt.version, CommitHash: "abcdef123", BuildTime: "now"}
			assert.Equal(t, tt.want, info.String())
		})
	}
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abcdef1", Info{CommitHash: "abcdef123"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

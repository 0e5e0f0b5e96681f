package version

import (
	"runtime/debug"
	"testing"
)

func withVersion(t *testing.T, v, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = v, commit, built
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		version, commit, built string
		want                   string
	}{
		{"1.2.3", "abc1234", "2025-10-23T10:20:30Z", "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"},
		{"1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"", "", "", "0.0.0-dev (development)"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version, tt.commit, tt.built)
		if got := FormatVersion(); got != tt.want {
			t.Errorf("FormatVersion() = %q, want %q", got, tt.want)
		}
	}
}

func TestApplyBuildSettings(t *testing.T) {
	withVersion(t, "0.0.0-dev", "", "")

	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-01-02T03:04:05+02:00"},
		{Key: "vcs.tag", Value: "v1.4.0"},
		{Key: "vcs.modified", Value: "true"},
	})

	if Commit != "0123456" {
		t.Errorf("Commit = %q", Commit)
	}
	if BuildTime != "2025-01-02T01:04:05Z" {
		t.Errorf("BuildTime = %q", BuildTime)
	}
	if Version != "1.4.0-dirty" {
		t.Errorf("Version = %q", Version)
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.10.0", "1.9.3", true},
		{"1.2.0", "1.2.0", false},
		{"1.2", "1.2.1", false},
		{"v2.0.0", "1.99.99-dirty", true},
		{"1.0.0", "1.0.1", false},
	}
	for _, tt := range tests {
		if got := IsNewer(tt.latest, tt.current); got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}

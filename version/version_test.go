package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := Get()
	if info == nil {
		t.Fatal("expected non-nil Info")
	}
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.GoVersion == "" {
		t.Error("expected a Go version from build info")
	}
}

func TestGetWithLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"
	BuildTime = "2026-01-15T10:30:00Z"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("expected '1.2.0', got %q", info.Version)
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected 'abc1234', got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-15T10:30:00Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
}

func TestShortWithCommit(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "1a2b3c4"

	if got := Short(); got != "1.2.0-1a2b3c4" {
		t.Errorf("expected '1.2.0-1a2b3c4', got %q", got)
	}
}

func TestShortNoCommit(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = ""
	BuildTime = ""

	// The build info may still contribute a commit, so only the version
	// prefix is stable.
	if got := Short(); !strings.HasPrefix(got, "1.2.0") {
		t.Errorf("expected version prefix, got %q", got)
	}
}

package version

import (
	"runtime/debug"
	"testing"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = prev })
}

func withLinkerVars(t *testing.T, version, commit string) {
	t.Helper()
	pv, pc := Version, Commit
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit = pv, pc })
}

func TestGetNoBuildInfo(t *testing.T) {
	withBuildInfo(t, nil)
	withLinkerVars(t, "", "")

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected dev, got %q", info.Version)
	}
	if info.String() != "dev" {
		t.Errorf("expected dev string, got %q", info.String())
	}
}

func TestGetMainModule(t *testing.T) {
	withLinkerVars(t, "", "")
	withBuildInfo(t, &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Path: ModulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456789"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	info := Get()
	if info.Version != "dev" || info.Commit != "abcdef0" || !info.Dirty {
		t.Errorf("unexpected info %+v", info)
	}
	if got := info.String(); got != "dev-abcdef0-dirty" {
		t.Errorf("String() = %q", got)
	}
	if info.GoVersion != "go1.26.0" {
		t.Errorf("expected go version, got %q", info.GoVersion)
	}
}

func TestGetDependency(t *testing.T) {
	withLinkerVars(t, "", "")
	tests := []struct {
		name string
		dep  *debug.Module
		want string
	}{
		{"plain", &debug.Module{Path: ModulePath, Version: "v0.4.1"}, "v0.4.1"},
		{"replaced", &debug.Module{Path: ModulePath, Version: "v0.4.1", Replace: &debug.Module{Path: "../enumkit", Version: "v0.5.0-rc1"}}, "v0.5.0-rc1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withBuildInfo(t, &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/app"},
				Deps: []*debug.Module{{Path: "github.com/rs/zerolog", Version: "v1.34.0"}, tc.dep},
			})
			if got := Get().Version; got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestGetLinkerOverrides(t *testing.T) {
	withLinkerVars(t, "v9.9.9", "1234567")
	withBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Path: ModulePath, Version: "v0.1.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fffffffffff"}},
	})

	info := Get()
	if info.Version != "v9.9.9" || info.Commit != "1234567" {
		t.Errorf("linker values should win, got %+v", info)
	}
}

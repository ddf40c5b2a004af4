package version

import (
	"runtime/debug"
	"strings"
)

// ModulePath is the import path enumkit is published under.
const ModulePath = "github.com/kbukum/enumkit"

// Version and Commit may be set at build time:
//
//	go build -ldflags "-X github.com/kbukum/enumkit/version.Version=v1.2.0"
var (
	Version = ""
	Commit  = ""
)

const devVersion = "dev"

// Info describes the enumkit build linked into the binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// String renders the info as version[-commit][-dirty].
func (i Info) String() string {
	parts := []string{i.Version}
	if i.Commit != "" {
		parts = append(parts, i.Commit)
	}
	if i.Dirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

var readBuildInfo = debug.ReadBuildInfo

// Get returns the running enumkit version. Linker-provided values win; after
// that the module is looked up as the main module, then among dependencies.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}
	bi, ok := readBuildInfo()
	if ok {
		info.GoVersion = bi.GoVersion
		fromBuildInfo(&info, bi)
	}
	if info.Version == "" {
		info.Version = devVersion
	}
	return info
}

func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if bi.Main.Path == ModulePath {
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortCommit(s.Value)
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
		return
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		if info.Version == "" {
			info.Version = dep.Version
		}
		return
	}
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Package build exposes the binary's version metadata.
//
// Version and Commit default for plain go-build development binaries and
// are pinned on release:
//
//	go build -ldflags "-X github.com/yacineMTB/dingcad-sub001/cmd/dingcad/internal/build.Version=v0.3.0"
//
// When Commit is not injected, the VCS revision stamped by the Go
// toolchain is used instead.
package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = ""
)

// String formats the line printed by 'dingcad version'.
func String() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return fmt.Sprintf("dingcad %s %s/%s", Version, runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("dingcad %s (%s) %s/%s", Version, commit, runtime.GOOS, runtime.GOARCH)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}

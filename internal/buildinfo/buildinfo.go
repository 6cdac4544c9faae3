// Package buildinfo holds release metadata injected at link time:
//
//	go build -ldflags "-X github.com/aidanlsb/notation/internal/buildinfo.Version=v0.2.0"
//
// All values are empty for local builds.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)

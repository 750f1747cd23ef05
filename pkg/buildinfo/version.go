// Package buildinfo carries the version stamped into padring binaries.
//
// Release builds overwrite the defaults through ldflags:
//
//	go build -ldflags "-X github.com/dominauta/padring/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/dominauta/padring/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/dominauta/padring/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Defaults identify an unstamped developer build.
var (
	// Version is the semantic release version.
	Version = "dev"

	// Commit is the git commit SHA of the build.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String formats the full build information as a multi-line block.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template wired into the cobra root
// command.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Package buildinfo exposes version metadata stamped at link time:
//
//	go build -ldflags "\
//	  -X github.com/avbelov/vkreportbot/core/buildinfo.Version=$(git describe --tags) \
//	  -X github.com/avbelov/vkreportbot/core/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/avbelov/vkreportbot/core/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped binaries report the dev defaults below. The values surface in
// the startup log line.
package buildinfo

var (
	// Version is the release tag of the build.
	Version = "dev"
	// Commit is the short hash the binary was built from.
	Commit = "local"
	// Date is the UTC build timestamp, RFC3339.
	Date = ""
)

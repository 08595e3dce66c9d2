// Package buildinfo exposes the version and build hash stamped into the
// binary by the build, for example:
//
//	go build -ldflags "-X github.com/sgaunet/webui-config/pkg/buildinfo.Version=v0.3.1 \
//	  -X github.com/sgaunet/webui-config/pkg/buildinfo.BuildHash=$(git rev-parse HEAD)"
package buildinfo

// Overridden at link time.
var (
	Version   = "development"
	BuildHash = "dev-build"
)

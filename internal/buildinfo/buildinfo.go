// Package buildinfo exposes version metadata stamped at link time via
// -ldflags "-X .../buildinfo.Version=...".
package buildinfo

import "github.com/forensiclog/logscan-core/internal/logger"

// Version is the build version string. Overridden at link time.
var Version = "logscan-core-unknown-timestamp-000000-0000000"

// Init logs the build version. Call after logger.Init().
func Init() {
	logger.Infof("build version: %s", Version)
}

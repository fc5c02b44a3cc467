// Package constants provides shared constants used throughout the skymap codebase.
// This includes timeouts, file permissions, and default configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for downloading a catalog source
	DefaultHTTPTimeout = 60 * time.Second

	// BuildTimeout is the default timeout for a full catalog build
	BuildTimeout = 10 * time.Minute

	// DefaultCacheTTL is how long a cached source download stays fresh
	DefaultCacheTTL = 24 * time.Hour
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default build configuration values
const (
	// DefaultOutputFile is the catalog file written when no --output flag is given
	DefaultOutputFile = "sky.dat"

	// DefaultCacheDirName is the cache directory created under the user cache dir
	DefaultCacheDirName = "skymap"
)

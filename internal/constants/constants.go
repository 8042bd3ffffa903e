// Package constants centralizes shared defaults for the forgekit client and CLI.
package constants

import "time"

// Connection defaults.
const (
	// DefaultHost is used when no host is configured.
	DefaultHost = "localhost"

	// DefaultPort is the forge's default listen port.
	DefaultPort = 3000

	// DefaultHTTPPort and DefaultHTTPSPort are assumed when a URL carries
	// no explicit port.
	DefaultHTTPPort  = 80
	DefaultHTTPSPort = 443

	// APIBasePath is the versioned path segment all request paths resolve
	// against. The trailing slash is required.
	APIBasePath = "/api/v1/"

	// MinPort and MaxPort bound the valid TCP port range.
	MinPort = 1
	MaxPort = 65535
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as login checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry defaults, applied only when retries are explicitly enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

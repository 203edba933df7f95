package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are opt-in; these apply only when a caller enables
// them via Config.RetryMax.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API endpoint constants.
const (
	// DefaultAPIHost is the production API host.
	DefaultAPIHost = "https://api.realtyhub.io"

	// APIVersionSegment is the version prefix used by every verb except POST.
	APIVersionSegment = "/v1"

	// AuthQueryParam carries the API token. The upstream service reads the
	// token from the query string, not from a header.
	AuthQueryParam = "api_token"
)

// Environment variables.
const (
	// APIKeyEnvVar is the fallback source for the API key when it is not
	// passed explicitly in the config.
	APIKeyEnvVar = "REALTY_API_KEY"
)

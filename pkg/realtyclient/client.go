package realtyclient

import (
	"os"
	"strings"

	"github.com/realtyhub-io/realty-client/internal/client"
	"github.com/realtyhub-io/realty-client/internal/constants"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// New creates a new RealtyHub API client from the given configuration.
//
// The API key is resolved once, here: an explicit Config.APIKey wins,
// otherwise the REALTY_API_KEY environment variable is read. Later changes
// to the environment do not affect an existing client.
func New(config *realty.Config) (realty.Client, error) {
	if config == nil {
		return nil, realty.ErrConfigRequired
	}

	resolved := *config

	if resolved.APIKey == "" {
		resolved.APIKey = os.Getenv(constants.APIKeyEnvVar)
	}

	if resolved.APIKey == "" {
		return nil, realty.ErrAPIKeyRequired
	}

	resolved.Host = normalizeHost(resolved.Host)

	return client.New(&resolved)
}

// normalizeHost trims trailing slashes and defaults the scheme to https so
// that "api.realtyhub.io" and "https://api.realtyhub.io/" both work.
func normalizeHost(host string) string {
	if host == "" {
		return ""
	}

	host = strings.TrimRight(host, "/")

	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	return host
}

package http

import (
	"strings"

	"github.com/realtyhub-io/realty-client/internal/constants"
)

// URLResolver selects the base URL prefix for a request as a pure function
// of the HTTP verb. The upstream service serves creation (POST) from the
// bare host and every other verb from the /v1 prefix; the rule lives here,
// in one seam, so it can be overridden and tested in isolation.
type URLResolver func(method string) string

// DefaultURLResolver returns the production resolver for the given host.
func DefaultURLResolver(host string) URLResolver {
	host = strings.TrimSuffix(host, "/")

	return func(method string) string {
		if method == "POST" {
			return host
		}

		return host + constants.APIVersionSegment
	}
}

// createPathOverrides maps collection paths to the path actually sent on
// POST. Property creation requires a trailing slash where no other
// collection does; keeping the quirk in a table avoids growing the
// resolver into a pile of conditionals.
var createPathOverrides = map[string]string{
	"properties": "properties/",
}

// applyCreateOverride rewrites path for POST requests that have a
// per-path override. All other verbs and paths pass through unchanged.
func applyCreateOverride(method, path string) string {
	if method != "POST" {
		return path
	}

	if override, ok := createPathOverrides[strings.Trim(path, "/")]; ok {
		return override
	}

	return path
}

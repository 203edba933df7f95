package client

import (
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// PropertiesClient implements realty.PropertiesClient.
//
// Create sends POST to "properties/" — the one collection whose creation
// path needs a trailing slash (handled by the HTTP layer's override table).
// Note that the production service has been observed to answer property
// creation with 405 Method Not Allowed despite documenting the endpoint;
// the method implements the intended contract and surfaces the 405 as a
// server error rather than papering over it.
type PropertiesClient struct {
	*collection[realty.Property]
}

// NewPropertiesClient creates a new properties client.
func NewPropertiesClient(httpClient *http.Client) *PropertiesClient {
	return &PropertiesClient{newCollection[realty.Property](httpClient, "properties")}
}

package client

import (
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// TeamsClient implements realty.TeamsClient.
type TeamsClient struct {
	*collection[realty.Team]
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client) *TeamsClient {
	return &TeamsClient{newCollection[realty.Team](httpClient, "teams")}
}

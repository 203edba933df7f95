package client

import (
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// AgentsClient implements realty.AgentsClient.
type AgentsClient struct {
	*collection[realty.Agent]
}

// NewAgentsClient creates a new agents client.
func NewAgentsClient(httpClient *http.Client) *AgentsClient {
	return &AgentsClient{newCollection[realty.Agent](httpClient, "agents")}
}

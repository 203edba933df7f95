package client

import (
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// UsersClient implements realty.UsersClient.
type UsersClient struct {
	*collection[realty.User]
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{newCollection[realty.User](httpClient, "users")}
}

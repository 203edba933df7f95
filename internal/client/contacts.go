package client

import (
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// ContactsClient implements realty.ContactsClient.
type ContactsClient struct {
	*collection[realty.Contact]
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(httpClient *http.Client) *ContactsClient {
	return &ContactsClient{newCollection[realty.Contact](httpClient, "contacts")}
}

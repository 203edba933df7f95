package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtyhub-io/realty-client/internal/client"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestContactsClient(t *testing.T) {
	t.Parallel()

	client.RunCollectionTests(t, client.CollectionSuite[realty.Contact]{
		Collection: "contacts",
		Client: func(c *client.Client) realty.CollectionClient[realty.Contact] {
			return c.Contacts()
		},
		Sample: map[string]interface{}{
			"id":         42,
			"first_name": "Marcus",
			"last_name":  "Webb",
			"email":      "marcus@example.com",
			"mobile":     "0400 000 000",
			"tags":       []string{"buyer", "first-home"},
		},
		SampleData: map[string]interface{}{
			"first_name": "Marcus",
			"last_name":  "Webb",
		},
		Validate: func(t *testing.T, contact *realty.Contact) {
			assert.Equal(t, 42, contact.ID)
			assert.Equal(t, "Marcus", contact.FirstName)
			assert.Equal(t, []string{"buyer", "first-home"}, contact.Tags)
		},
	})
}

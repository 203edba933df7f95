package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtyhub-io/realty-client/internal/client"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestUsersClient(t *testing.T) {
	t.Parallel()

	client.RunCollectionTests(t, client.CollectionSuite[realty.User]{
		Collection: "users",
		Client: func(c *client.Client) realty.CollectionClient[realty.User] {
			return c.Users()
		},
		Sample: map[string]interface{}{
			"id":         42,
			"first_name": "Priya",
			"last_name":  "Shah",
			"email":      "priya@example.com",
			"role":       "admin",
			"active":     true,
		},
		SampleData: map[string]interface{}{
			"first_name": "Priya",
			"last_name":  "Shah",
			"email":      "priya@example.com",
		},
		Validate: func(t *testing.T, user *realty.User) {
			assert.Equal(t, 42, user.ID)
			assert.Equal(t, "admin", user.Role)
			assert.True(t, user.Active)
		},
	})
}

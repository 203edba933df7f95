package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtyhub-io/realty-client/internal/client"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestTeamsClient(t *testing.T) {
	t.Parallel()

	client.RunCollectionTests(t, client.CollectionSuite[realty.Team]{
		Collection: "teams",
		Client: func(c *client.Client) realty.CollectionClient[realty.Team] {
			return c.Teams()
		},
		Sample: map[string]interface{}{
			"id":          42,
			"name":        "Inner West Sales",
			"description": "Sales team covering the inner west",
		},
		SampleData: map[string]interface{}{
			"name": "Inner West Sales",
		},
		Validate: func(t *testing.T, team *realty.Team) {
			assert.Equal(t, 42, team.ID)
			assert.Equal(t, "Inner West Sales", team.Name)
		},
	})
}

package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtyhub-io/realty-client/internal/client"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestTagsClient(t *testing.T) {
	t.Parallel()

	client.RunCollectionTests(t, client.CollectionSuite[realty.Tag]{
		Collection: "tags",
		Client: func(c *client.Client) realty.CollectionClient[realty.Tag] {
			return c.Tags()
		},
		Sample: map[string]interface{}{
			"id":   42,
			"name": "vendor",
		},
		SampleData: map[string]interface{}{
			"name": "vendor",
		},
		Validate: func(t *testing.T, tag *realty.Tag) {
			assert.Equal(t, 42, tag.ID)
			assert.Equal(t, "vendor", tag.Name)
		},
	})
}

package client

import (
	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// TagsClient implements realty.TagsClient.
type TagsClient struct {
	*collection[realty.Tag]
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{newCollection[realty.Tag](httpClient, "tags")}
}

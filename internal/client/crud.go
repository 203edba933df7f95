package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// collection implements realty.CollectionClient[T] over a fixed collection
// path. The per-resource clients are thin typed facades over this; the API
// is uniform enough that one implementation serves every resource.
type collection[T any] struct {
	httpClient *http.Client
	path       string
}

func newCollection[T any](httpClient *http.Client, path string) *collection[T] {
	return &collection[T]{
		httpClient: httpClient,
		path:       path,
	}
}

// List fetches the collection.
func (c *collection[T]) List(ctx context.Context, params *realty.QueryParams) ([]T, error) {
	var query url.Values

	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.path, err)
	}

	return decodeList[T](resp.Body, c.path)
}

// Create posts data as a new record. Empty data fails before any network
// call.
func (c *collection[T]) Create(ctx context.Context, data map[string]interface{}) (*T, error) {
	if len(data) == 0 {
		return nil, realty.ErrEmptyPayload
	}

	resp, err := c.httpClient.Post(ctx, c.path, data)
	if err != nil {
		return nil, fmt.Errorf("creating %s record: %w", c.path, err)
	}

	return decodeRecord[T](resp.Body, c.path)
}

// Get fetches a single record by id.
func (c *collection[T]) Get(ctx context.Context, id int) (*T, error) {
	if id <= 0 {
		return nil, realty.ErrInvalidID
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("%s/%d", c.path, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s record: %w", c.path, err)
	}

	return decodeRecord[T](resp.Body, c.path)
}

// Update puts partial or full data over the record.
func (c *collection[T]) Update(ctx context.Context, id int, data map[string]interface{}) (*T, error) {
	if id <= 0 {
		return nil, realty.ErrInvalidID
	}

	if len(data) == 0 {
		return nil, realty.ErrEmptyPayload
	}

	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("%s/%d", c.path, id), data)
	if err != nil {
		return nil, fmt.Errorf("updating %s record: %w", c.path, err)
	}

	return decodeRecord[T](resp.Body, c.path)
}

// Delete removes the record and returns the server's acknowledgment body
// verbatim.
func (c *collection[T]) Delete(ctx context.Context, id int) (json.RawMessage, error) {
	if id <= 0 {
		return nil, realty.ErrInvalidID
	}

	resp, err := c.httpClient.Delete(ctx, fmt.Sprintf("%s/%d", c.path, id))
	if err != nil {
		return nil, fmt.Errorf("deleting %s record: %w", c.path, err)
	}

	return json.RawMessage(resp.Body), nil
}

// decodeRecord unmarshals a normalized payload into a single resource.
func decodeRecord[T any](body []byte, path string) (*T, error) {
	var record T

	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", path, err)
	}

	return &record, nil
}

// decodeList unmarshals a normalized payload into a resource slice. An
// empty payload is an empty collection.
func decodeList[T any](body []byte, path string) ([]T, error) {
	if len(body) == 0 {
		return []T{}, nil
	}

	var records []T

	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", path, err)
	}

	return records, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// subcollection implements realty.SubresourceClient[T] for resources
// nested under a property. Every path is scoped by the parent property id;
// whether the parent exists is the server's problem, not checked here.
type subcollection[T any] struct {
	httpClient *http.Client
	segment    string
}

func newSubcollection[T any](httpClient *http.Client, segment string) *subcollection[T] {
	return &subcollection[T]{
		httpClient: httpClient,
		segment:    segment,
	}
}

func (s *subcollection[T]) collectionPath(propertyID int) string {
	return fmt.Sprintf("properties/%d/%s", propertyID, s.segment)
}

// List fetches the sub-resource collection for a property.
func (s *subcollection[T]) List(ctx context.Context, propertyID int, params *realty.QueryParams) ([]T, error) {
	if propertyID <= 0 {
		return nil, realty.ErrInvalidPropertyID
	}

	var query url.Values

	if params != nil {
		query = params.ToValues()
	}

	resp, err := s.httpClient.Get(ctx, s.collectionPath(propertyID), query)
	if err != nil {
		return nil, fmt.Errorf("listing property %s: %w", s.segment, err)
	}

	return decodeList[T](resp.Body, s.segment)
}

// Create posts data as a new record under the property.
func (s *subcollection[T]) Create(ctx context.Context, propertyID int, data map[string]interface{}) (*T, error) {
	if propertyID <= 0 {
		return nil, realty.ErrInvalidPropertyID
	}

	if len(data) == 0 {
		return nil, realty.ErrEmptyPayload
	}

	resp, err := s.httpClient.Post(ctx, s.collectionPath(propertyID), data)
	if err != nil {
		return nil, fmt.Errorf("creating property %s record: %w", s.segment, err)
	}

	return decodeRecord[T](resp.Body, s.segment)
}

// Get fetches a single sub-resource record.
func (s *subcollection[T]) Get(ctx context.Context, propertyID, id int) (*T, error) {
	if propertyID <= 0 {
		return nil, realty.ErrInvalidPropertyID
	}

	if id <= 0 {
		return nil, realty.ErrInvalidID
	}

	resp, err := s.httpClient.Get(ctx, fmt.Sprintf("%s/%d", s.collectionPath(propertyID), id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting property %s record: %w", s.segment, err)
	}

	return decodeRecord[T](resp.Body, s.segment)
}

// Update puts partial or full data over the sub-resource record.
func (s *subcollection[T]) Update(ctx context.Context, propertyID, id int, data map[string]interface{}) (*T, error) {
	if propertyID <= 0 {
		return nil, realty.ErrInvalidPropertyID
	}

	if id <= 0 {
		return nil, realty.ErrInvalidID
	}

	if len(data) == 0 {
		return nil, realty.ErrEmptyPayload
	}

	resp, err := s.httpClient.Put(ctx, fmt.Sprintf("%s/%d", s.collectionPath(propertyID), id), data)
	if err != nil {
		return nil, fmt.Errorf("updating property %s record: %w", s.segment, err)
	}

	return decodeRecord[T](resp.Body, s.segment)
}

// Delete removes the sub-resource record and returns the server's
// acknowledgment body verbatim.
func (s *subcollection[T]) Delete(ctx context.Context, propertyID, id int) (json.RawMessage, error) {
	if propertyID <= 0 {
		return nil, realty.ErrInvalidPropertyID
	}

	if id <= 0 {
		return nil, realty.ErrInvalidID
	}

	resp, err := s.httpClient.Delete(ctx, fmt.Sprintf("%s/%d", s.collectionPath(propertyID), id))
	if err != nil {
		return nil, fmt.Errorf("deleting property %s record: %w", s.segment, err)
	}

	return json.RawMessage(resp.Body), nil
}

// PropertyDocumentsClient implements realty.PropertyDocumentsClient.
type PropertyDocumentsClient struct {
	*subcollection[realty.Document]
}

// NewPropertyDocumentsClient creates a new property documents client.
func NewPropertyDocumentsClient(httpClient *http.Client) *PropertyDocumentsClient {
	return &PropertyDocumentsClient{newSubcollection[realty.Document](httpClient, "documents")}
}

// PropertyEmailsClient implements realty.PropertyEmailsClient.
type PropertyEmailsClient struct {
	*subcollection[realty.Email]
}

// NewPropertyEmailsClient creates a new property emails client.
func NewPropertyEmailsClient(httpClient *http.Client) *PropertyEmailsClient {
	return &PropertyEmailsClient{newSubcollection[realty.Email](httpClient, "emails")}
}

// PropertyNotesClient implements realty.PropertyNotesClient.
type PropertyNotesClient struct {
	*subcollection[realty.Note]
}

// NewPropertyNotesClient creates a new property notes client.
func NewPropertyNotesClient(httpClient *http.Client) *PropertyNotesClient {
	return &PropertyNotesClient{newSubcollection[realty.Note](httpClient, "notes")}
}

// PropertyTasksClient implements realty.PropertyTasksClient.
type PropertyTasksClient struct {
	*subcollection[realty.Task]
}

// NewPropertyTasksClient creates a new property tasks client.
func NewPropertyTasksClient(httpClient *http.Client) *PropertyTasksClient {
	return &PropertyTasksClient{newSubcollection[realty.Task](httpClient, "tasks")}
}

// PropertyContactsClient implements realty.PropertyContactsClient.
type PropertyContactsClient struct {
	*subcollection[realty.Contact]
}

// NewPropertyContactsClient creates a new property contacts client.
func NewPropertyContactsClient(httpClient *http.Client) *PropertyContactsClient {
	return &PropertyContactsClient{newSubcollection[realty.Contact](httpClient, "contacts")}
}

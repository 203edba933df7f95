package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/realtyhub-io/realty-client/internal/http"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

// NewTestClient creates a client pointed at a test server.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, "test-key")

	client := &Client{
		httpClient: httpClient,
		host:       baseURL,
	}

	client.initializeResourceClients()

	return client
}

// CollectionSuite describes one top-level resource for the shared CRUD
// test runner. Every resource client shares the collection implementation,
// so one suite per resource keeps coverage honest without copying the same
// five tests six times.
type CollectionSuite[T any] struct {
	// Collection is the path segment, e.g. "agents".
	Collection string
	// CreatePath is the wire path expected on POST. Defaults to
	// "/" + Collection; properties override it with the trailing slash.
	CreatePath string
	// Client selects the resource client under test.
	Client func(*Client) realty.CollectionClient[T]
	// Sample is the record the mock server returns.
	Sample map[string]interface{}
	// SampleData is a valid create/update payload.
	SampleData map[string]interface{}
	// Validate checks a decoded record returned by the client.
	Validate func(*testing.T, *T)
}

// RunCollectionTests exercises the full CRUD surface of one resource
// against mock servers.
//
//nolint:funlen // covers five operations plus their failure modes
func RunCollectionTests[T any](t *testing.T, suite CollectionSuite[T]) {
	t.Helper()

	createPath := suite.CreatePath
	if createPath == "" {
		createPath = "/" + suite.Collection
	}

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/"+suite.Collection, request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("api_token"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": []interface{}{suite.Sample},
			})
		}))
		defer server.Close()

		records, err := suite.Client(NewTestClient(server.URL)).List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, records, 1)

		if suite.Validate != nil {
			suite.Validate(t, &records[0])
		}
	})

	t.Run("list empty", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": []interface{}{}})
		}))
		defer server.Close()

		records, err := suite.Client(NewTestClient(server.URL)).List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("list with params", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "25", request.URL.Query().Get("limit"))
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode([]interface{}{})
		}))
		defer server.Close()

		params := realty.NewQueryParams().WithLimit(25)
		_, err := suite.Client(NewTestClient(server.URL)).List(context.Background(), params)
		require.NoError(t, err)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, createPath, request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.NotEmpty(t, body)

			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": suite.Sample})
		}))
		defer server.Close()

		record, err := suite.Client(NewTestClient(server.URL)).Create(context.Background(), suite.SampleData)
		require.NoError(t, err)
		require.NotNil(t, record)

		if suite.Validate != nil {
			suite.Validate(t, record)
		}
	})

	t.Run("create with empty payload fails fast", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no network call expected for an empty payload")
		}))
		defer server.Close()

		client := suite.Client(NewTestClient(server.URL))

		_, err := client.Create(context.Background(), map[string]interface{}{})
		require.ErrorIs(t, err, realty.ErrEmptyPayload)

		_, err = client.Create(context.Background(), nil)
		require.ErrorIs(t, err, realty.ErrEmptyPayload)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/"+suite.Collection+"/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": suite.Sample})
		}))
		defer server.Close()

		record, err := suite.Client(NewTestClient(server.URL)).Get(context.Background(), 42)
		require.NoError(t, err)
		require.NotNil(t, record)

		if suite.Validate != nil {
			suite.Validate(t, record)
		}
	})

	t.Run("get with invalid id fails fast", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no network call expected for an invalid id")
		}))
		defer server.Close()

		client := suite.Client(NewTestClient(server.URL))

		_, err := client.Get(context.Background(), 0)
		require.ErrorIs(t, err, realty.ErrInvalidID)

		_, err = client.Get(context.Background(), -7)
		require.ErrorIs(t, err, realty.ErrInvalidID)
	})

	t.Run("get absent record is not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"message": "record not found"})
		}))
		defer server.Close()

		_, err := suite.Client(NewTestClient(server.URL)).Get(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, realty.IsNotFound(err))

		apiErr := &realty.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/"+suite.Collection+"/42", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.NotEmpty(t, body)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": suite.Sample})
		}))
		defer server.Close()

		record, err := suite.Client(NewTestClient(server.URL)).Update(context.Background(), 42, suite.SampleData)
		require.NoError(t, err)
		require.NotNil(t, record)
	})

	t.Run("update with empty payload fails fast", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no network call expected for an empty payload")
		}))
		defer server.Close()

		_, err := suite.Client(NewTestClient(server.URL)).Update(context.Background(), 42, nil)
		require.ErrorIs(t, err, realty.ErrEmptyPayload)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/"+suite.Collection+"/42", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"success": true})
		}))
		defer server.Close()

		ack, err := suite.Client(NewTestClient(server.URL)).Delete(context.Background(), 42)
		require.NoError(t, err)
		assert.NotEmpty(t, ack)
	})
}

// SubresourceSuite describes one property sub-resource for the shared test
// runner.
type SubresourceSuite[T any] struct {
	// Segment is the nested path segment, e.g. "notes".
	Segment string
	// Client selects the sub-resource client under test.
	Client func(*Client) realty.SubresourceClient[T]
	// Sample is the record the mock server returns.
	Sample map[string]interface{}
	// SampleData is a valid create/update payload.
	SampleData map[string]interface{}
	// Validate checks a decoded record returned by the client.
	Validate func(*testing.T, *T)
}

// RunSubresourceTests exercises the CRUD surface of one property
// sub-resource against mock servers.
//
//nolint:funlen // covers five operations plus their failure modes
func RunSubresourceTests[T any](t *testing.T, suite SubresourceSuite[T]) {
	t.Helper()

	collectionPath := "/v1/properties/7/" + suite.Segment

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, collectionPath, request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": []interface{}{suite.Sample},
			})
		}))
		defer server.Close()

		records, err := suite.Client(NewTestClient(server.URL)).List(context.Background(), 7, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)

		if suite.Validate != nil {
			suite.Validate(t, &records[0])
		}
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// Sub-resource creation is unaffected by the trailing-slash
			// override on the properties collection itself.
			assert.Equal(t, "/properties/7/"+suite.Segment, request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": suite.Sample})
		}))
		defer server.Close()

		record, err := suite.Client(NewTestClient(server.URL)).Create(context.Background(), 7, suite.SampleData)
		require.NoError(t, err)
		require.NotNil(t, record)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, collectionPath+"/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": suite.Sample})
		}))
		defer server.Close()

		record, err := suite.Client(NewTestClient(server.URL)).Get(context.Background(), 7, 42)
		require.NoError(t, err)
		require.NotNil(t, record)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, collectionPath+"/42", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": suite.Sample})
		}))
		defer server.Close()

		record, err := suite.Client(NewTestClient(server.URL)).Update(context.Background(), 7, 42, suite.SampleData)
		require.NoError(t, err)
		require.NotNil(t, record)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, collectionPath+"/42", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"success": true})
		}))
		defer server.Close()

		ack, err := suite.Client(NewTestClient(server.URL)).Delete(context.Background(), 7, 42)
		require.NoError(t, err)
		assert.NotEmpty(t, ack)
	})

	t.Run("invalid property id fails fast", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no network call expected for an invalid property id")
		}))
		defer server.Close()

		client := suite.Client(NewTestClient(server.URL))

		_, err := client.List(context.Background(), 0, nil)
		require.ErrorIs(t, err, realty.ErrInvalidPropertyID)

		_, err = client.Get(context.Background(), -1, 42)
		require.ErrorIs(t, err, realty.ErrInvalidPropertyID)

		_, err = client.Delete(context.Background(), 0, 42)
		require.ErrorIs(t, err, realty.ErrInvalidPropertyID)
	})

	t.Run("invalid record id fails fast", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no network call expected for an invalid id")
		}))
		defer server.Close()

		client := suite.Client(NewTestClient(server.URL))

		_, err := client.Get(context.Background(), 7, 0)
		require.ErrorIs(t, err, realty.ErrInvalidID)

		_, err = client.Update(context.Background(), 7, 0, map[string]interface{}{"body": "x"})
		require.ErrorIs(t, err, realty.ErrInvalidID)
	})

	t.Run("empty payload fails fast", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no network call expected for an empty payload")
		}))
		defer server.Close()

		client := suite.Client(NewTestClient(server.URL))

		_, err := client.Create(context.Background(), 7, nil)
		require.ErrorIs(t, err, realty.ErrEmptyPayload)

		_, err = client.Update(context.Background(), 7, 42, map[string]interface{}{})
		require.ErrorIs(t, err, realty.ErrEmptyPayload)
	})
}

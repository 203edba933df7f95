package realtyclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyhub-io/realty-client/pkg/realty"
	"github.com/realtyhub-io/realty-client/pkg/realtyclient"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := realtyclient.New(nil)
		require.ErrorIs(t, err, realty.ErrConfigRequired)
	})

	t.Run("explicit API key", func(t *testing.T) {
		client, err := realtyclient.New(&realty.Config{APIKey: "explicit-key"})
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("API key from environment", func(t *testing.T) {
		t.Setenv("REALTY_API_KEY", "env-key")

		client, err := realtyclient.New(&realty.Config{})
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("explicit key wins over environment", func(t *testing.T) {
		t.Setenv("REALTY_API_KEY", "env-key")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "explicit-key", request.URL.Query().Get("api_token"))
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": []interface{}{}})
		}))
		defer server.Close()

		client, err := realtyclient.New(&realty.Config{
			APIKey: "explicit-key",
			Host:   server.URL,
		})
		require.NoError(t, err)

		_, err = client.Agents().List(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("no key anywhere", func(t *testing.T) {
		t.Setenv("REALTY_API_KEY", "")

		_, err := realtyclient.New(&realty.Config{})
		require.ErrorIs(t, err, realty.ErrAPIKeyRequired)
	})

	t.Run("environment read once at construction", func(t *testing.T) {
		t.Setenv("REALTY_API_KEY", "first-key")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "first-key", request.URL.Query().Get("api_token"))
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": []interface{}{}})
		}))
		defer server.Close()

		client, err := realtyclient.New(&realty.Config{Host: server.URL})
		require.NoError(t, err)

		t.Setenv("REALTY_API_KEY", "second-key")

		_, err = client.Contacts().List(context.Background(), nil)
		require.NoError(t, err)
	})
}

func TestNew_HostNormalization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/teams", request.URL.Path)
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer server.Close()

	// A trailing slash on the host must not produce double slashes in
	// request paths.
	client, err := realtyclient.New(&realty.Config{
		APIKey: "test-key",
		Host:   server.URL + "/",
	})
	require.NoError(t, err)

	_, err = client.Teams().List(context.Background(), nil)
	require.NoError(t, err)
}

package realty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("empty params", func(t *testing.T) {
		t.Parallel()

		params := realty.NewQueryParams()
		assert.Empty(t, params.ToValues())
	})

	t.Run("zero value sends nothing", func(t *testing.T) {
		t.Parallel()

		params := &realty.QueryParams{}
		assert.Empty(t, params.ToValues())
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		values := realty.NewQueryParams().WithLimit(50).WithOffset(100).ToValues()

		assert.Equal(t, "50", values.Get("limit"))
		assert.Equal(t, "100", values.Get("offset"))
	})

	t.Run("ordering and search", func(t *testing.T) {
		t.Parallel()

		values := realty.NewQueryParams().
			WithOrderBy("-created_at").
			WithSearch("balmain").
			ToValues()

		assert.Equal(t, "-created_at", values.Get("order_by"))
		assert.Equal(t, "balmain", values.Get("search"))
	})

	t.Run("filters are comma joined", func(t *testing.T) {
		t.Parallel()

		values := realty.NewQueryParams().
			WithFilter("status", "listing").
			WithFilter("status", "sold").
			WithFilter("suburb", "Newtown").
			ToValues()

		assert.Equal(t, "listing,sold", values.Get("status"))
		assert.Equal(t, "Newtown", values.Get("suburb"))
	})

	t.Run("filter on zero value allocates map", func(t *testing.T) {
		t.Parallel()

		params := &realty.QueryParams{}
		values := params.WithFilter("status", "listing").ToValues()

		assert.Equal(t, "listing", values.Get("status"))
	})
}

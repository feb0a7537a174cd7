package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"valid values pass through", 2, 50, 2, 50},
		{"negative page clamps to zero", -1, 50, 0, 50},
		{"zero size falls back to default", 0, 0, 0, DefaultPageSize},
		{"negative size falls back to default", 0, -5, 0, DefaultPageSize},
		{"oversized size clamps to max", 0, 5000, 0, MaxPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := NewPageRequest(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, req.Page)
			assert.Equal(t, tc.wantSize, req.Size)
		})
	}
}

func TestPageRequest_OffsetLimit(t *testing.T) {
	req := NewPageRequest(3, 25)

	assert.Equal(t, 75, req.Offset())
	assert.Equal(t, 25, req.Limit())
}

func TestNewPage(t *testing.T) {
	t.Run("computes total pages with a partial last page", func(t *testing.T) {
		page := NewPage([]string{"a", "b"}, NewPageRequest(0, 2), 5)

		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(5), page.TotalElements)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		page := NewPage([]string{}, NewPageRequest(0, 20), 0)

		assert.Equal(t, 0, page.TotalPages)
		assert.NotNil(t, page.Content)
	})

	t.Run("serializes in the envelope shape", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3}, NewPageRequest(1, 3), 7)

		raw, err := json.Marshal(page)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"content":[1,2,3],"page":1,"size":3,"totalElements":7,"totalPages":3}`,
			string(raw))
	})
}

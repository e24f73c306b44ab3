package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispenser/pkg/httpapi"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	serve := func(header string) (string, string) {
		var seen string
		h := httpapi.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = httpapi.RequestIDFromContext(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(httpapi.RequestIDHeader, header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return seen, rec.Header().Get(httpapi.RequestIDHeader)
	}

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		seen, echoed := serve("")
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, echoed)
	})

	valid := []string{"abc123", "test-request-id", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"}
	for _, id := range valid {
		t.Run("keeps "+id, func(t *testing.T) {
			t.Parallel()
			seen, echoed := serve(id)
			assert.Equal(t, id, seen)
			assert.Equal(t, id, echoed)
		})
	}

	invalid := []string{"test@request#id", "test request id", "test/request/id", "<script>", strings.Repeat("a", 129)}
	for _, id := range invalid {
		t.Run("replaces invalid", func(t *testing.T) {
			t.Parallel()
			seen, echoed := serve(id)
			assert.NotEmpty(t, seen)
			assert.NotEqual(t, id, seen)
			assert.Equal(t, seen, echoed)
		})
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, httpapi.RequestIDFromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, httpapi.RequestIDFromContext(nil))
	assert.Equal(t, "r-1", httpapi.RequestIDFromContext(httpapi.WithRequestID(context.Background(), "r-1")))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	ex := httpapi.RequestIDExtractor()

	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(httpapi.WithRequestID(context.Background(), "r-9"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "r-9", attr.Value.String())
}

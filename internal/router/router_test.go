package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nanashi-dev/nanashi/internal/config"
	"github.com/nanashi-dev/nanashi/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wrong verbs on API routes must return 405 with a JSON payload; the
// services are never reached.
func TestMethodNotAllowed(t *testing.T) {
	h := handler.New(nil, nil, nil, nil, &config.Config{Public: config.Public{Port: 8080, ThreadsPerPage: 20}})
	r := New(h)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/boards"},
		{http.MethodPut, "/boards"},
		{http.MethodDelete, "/threads"},
		{http.MethodPut, "/threads/1"},
		{http.MethodGet, "/posts"},
		{http.MethodDelete, "/posts"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusMethodNotAllowed, rr.Code, "%s %s", tc.method, tc.path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload), "%s %s", tc.method, tc.path)
		assert.NotEmpty(t, payload["error"])
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	h := handler.New(nil, nil, nil, nil, &config.Config{Public: config.Public{Port: 8080, ThreadsPerPage: 20}})
	r := New(h)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var payload map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	assert.NotEmpty(t, payload["error"])
}

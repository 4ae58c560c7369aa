package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/correialeo/meandai/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithURLParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathUUID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	got, err := getPathUUID(requestWithURLParam("id", id.String()), "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = getPathUUID(requestWithURLParam("id", "nope"), "id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = getPathUUID(requestWithURLParam("other", id.String()), "id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query  string
		want   int
		wantOK bool
	}{
		{query: "", want: 7, wantOK: true},
		{query: "n=3", want: 3, wantOK: true},
		{query: "n=0", wantOK: false},
		{query: "n=-2", wantOK: false},
		{query: "n=x", wantOK: false},
		{query: "n=1.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, ok := queryInt(req, "n", 7)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

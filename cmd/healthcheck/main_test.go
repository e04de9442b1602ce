package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "degraded", status: http.StatusServiceUnavailable, wantError: true},
		{name: "not found", status: http.StatusNotFound, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/health", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := probe(utils.NewHTTPClient(time.Second), probeConfig{URL: srv.URL + "/api/health"})
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errUnhealthy)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := probe(utils.NewHTTPClient(time.Second), probeConfig{URL: url})

	require.Error(t, err)
	assert.NotErrorIs(t, err, errUnhealthy)
}

package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/handler"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackground struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (b *stubBackground) Run(ctx context.Context) {
	b.started.Store(true)
	<-ctx.Done()
	b.stopped.Store(true)
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_AppliesConfig(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:     "127.0.0.1:9999",
		ShutdownTimeout: 3 * time.Second,
	}, logger.Nop())

	assert.Equal(t, "127.0.0.1:9999", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, h.shutdownTimeout)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	background := &stubBackground{}
	s := &server{
		httpServer: newHTTPServer(router, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop()),
		background: background,
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	client := utils.NewHTTPClient(time.Second)
	require.Eventually(t, func() bool {
		resp, err := client.R().Get("http://" + addr + "/")
		return err == nil && resp.StatusCode() == http.StatusTeapot
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, background.started.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	assert.True(t, background.stopped.Load())

	_, err := client.R().Get("http://" + addr + "/")
	assert.Error(t, err)
}

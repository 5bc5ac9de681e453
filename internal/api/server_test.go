package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/frogfen/internal/api"
	"github.com/mcoot/frogfen/internal/testutil"
)

func TestServerListenOnFreePort(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	config := api.DefaultServerConfig()
	config.Host = "127.0.0.1"
	config.Port = 0
	config.ShutdownTimeout = time.Second
	server := api.NewServer(handler, config, testutil.NopLogger())

	require.NoError(t, server.Listen())
	assert.NotEqual(t, "127.0.0.1:0", server.Addr())

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	resp, err := http.Get(server.URL() + "/anything")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	require.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}

func TestServerURL(t *testing.T) {
	config := api.DefaultServerConfig()
	server := api.NewServer(http.NotFoundHandler(), config, testutil.NopLogger())
	assert.Equal(t, "http://localhost:8080", server.URL())
}

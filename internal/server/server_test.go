package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipedex/backend/config"
	"github.com/recipedex/backend/internal/server"
)

func TestServerStartShutdown(t *testing.T) {
	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: "0"}
	srv := server.New(cfg, http.NewServeMux())

	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Give the listener a moment to come up before shutting down
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}

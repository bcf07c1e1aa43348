package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/learntech/courseplanner/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.ReadTimeout = time.Second
	cfg.Server.WriteTimeout = time.Second
	cfg.Server.ShutdownTimeout = time.Second

	closed := 0
	srv := NewServer(cfg, http.NotFoundHandler(), func() { closed++ })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, closed)
}

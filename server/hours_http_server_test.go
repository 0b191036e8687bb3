package server

import (
	"context"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestHoursHttpServer_RunStopsOnCancel(t *testing.T) {
	muxRouter := mux.NewRouter()
	srv := NewHoursHttpServer(NewRouter(mockHandler{}, mockHandler{}, muxRouter), muxRouter, "127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, srv.Run(ctx))
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type HoursHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewHoursHttpServer(router *Router, muxRouter *mux.Router, addr string) *HoursHttpServer {
	return &HoursHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Run serves until ctx is done.
func (s *HoursHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[HoursHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("ListenAndServe(): %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[HoursHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Println("[HoursHttpServer] Server exiting")
	return nil
}

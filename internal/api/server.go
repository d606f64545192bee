package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/youruser/mockupapp/internal/mockup"
)

// Serve runs the API on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, gen *mockup.Generator) error {
	server := &http.Server{
		Addr:    addr,
		Handler: NewRouter(gen),
	}

	serverErr := make(chan error, 1)
	go func() {
		gen.Logger.Info("Mockup server available", "addr", addr, "url", "http://localhost"+addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		gen.Logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			gen.Logger.Error("Server shutdown failed", "err", err)
			return err
		}
		gen.Logger.Info("Server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}

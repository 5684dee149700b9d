// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "travelia/internal/adapters/in/http"
	"travelia/internal/adapters/in/http/middleware"
	"travelia/internal/platform/di"
)

func main() {
	ctx := context.Background()

	// Lightweight healthz first so PORT is LISTENed quickly on Cloud Run.
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Heavy deps; keep /healthz even on failure.
	allowOrigin := "*"
	port := ""
	if inf, err := di.NewInfra(ctx); err != nil {
		log.Printf("[boot] WARN: infra init failed: %v (serving /healthz only)", err)
	} else {
		defer func() { _ = inf.Close() }()

		cont := di.NewContainer(ctx, inf)
		mux.Handle("/", httpin.NewRouter(cont.RouterDeps()))

		allowOrigin = inf.Config.AllowOrigin
		port = inf.Config.Port
	}

	// Port resolution: config -> env:PORT -> 8080
	if port == "" {
		if p := os.Getenv("PORT"); p != "" {
			port = p
		} else {
			port = "8080"
		}
	}

	// Global wrappers (cover /healthz and app routes).
	handler := middleware.CORS(allowOrigin, middleware.Recover(mux))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown for Cloud Run.
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c
		log.Printf("[boot] received signal: %v; shutting down...", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[boot] server shutdown error: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("[boot] listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[boot] server error: %v", err)
	}

	<-idleConnsClosed
	log.Printf("[boot] shutdown complete")
}

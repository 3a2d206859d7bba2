package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/dropclock/dropclock/internal/gateway"
)

func setupServer(port string, svc *gateway.Service) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	svc.RegisterRoutes(mux)
	setupHealthCheck(mux)

	mux.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		stats := svc.Stats()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"service":"dropclockd","connections":%v}`,
			stats["total_connections"])
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      c.Handler(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dropclock/dropclock/internal/catalog"
	"github.com/dropclock/dropclock/internal/celebration"
	"github.com/dropclock/dropclock/internal/engine"
	"github.com/dropclock/dropclock/internal/gateway"
	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/store"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg := loadConfig()

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	clock := clockwork.NewRealClock()

	events := seedCatalog(cfg, clock)

	log.Info().
		Str("port", cfg.Port).
		Str("viewer_timezone", cfg.ViewerTimezone).
		Int("catalog_size", len(events)).
		Msg("starting dropclockd")

	st := store.New(clock, cfg.ViewerTimezone, events)

	// The gateway is both the burst sink and the cue player, but it is
	// built after the engine. The relay closes the cycle.
	relay := &gatewayRelay{}
	trigger := celebration.NewTrigger(clock, relay, relay, st.SoundEnabled)
	st.BindCelebration(trigger)

	eng := engine.New(st, clock, trigger)
	svc := gateway.NewService(st, eng, clock, gateway.DefaultConnectionConfig())
	relay.svc = svc

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.Run(ctx)
	eng.Start(ctx)

	server := setupServer(cfg.Port, svc)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	eng.Stop()
	cancel()

	// Give the broadcast loop time to drain
	time.Sleep(1 * time.Second)

	log.Info().Msg("dropclockd shutdown complete")
}

func seedCatalog(cfg Config, clock clockwork.Clock) []models.TargetEvent {
	if cfg.CatalogPath == "" {
		return catalog.Defaults(clock.Now(), cfg.ViewerTimezone)
	}
	events, err := loadCatalogFile(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("failed to load catalog file")
	}
	return events
}

// gatewayRelay forwards celebration output to the gateway service once it
// exists. Writes to svc happen before the engine starts, so no lock.
type gatewayRelay struct {
	svc *gateway.Service
}

func (r *gatewayRelay) EmitBurst(b celebration.Burst) {
	if r.svc != nil {
		r.svc.EmitBurst(b)
	}
}

func (r *gatewayRelay) Play() error {
	if r.svc == nil {
		return nil
	}
	return r.svc.Play()
}

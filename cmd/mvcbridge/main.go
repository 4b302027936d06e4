package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/tailored-agentic-units/ymvc/bridge"
	"github.com/tailored-agentic-units/ymvc/mvc"
	"github.com/tailored-agentic-units/ymvc/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to bridge config file (.json or .yaml)")
		address    = flag.String("addr", "", "Listen address (overrides config)")
		observer   = flag.String("observer", "", "Lifecycle observer name (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := bridge.DefaultConfig()
	if *configFile != "" {
		loaded, err := bridge.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *address != "" {
		cfg.Address = *address
	}
	if *observer != "" {
		cfg.Facade.Observer = *observer
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	facade, err := mvc.New(&cfg.Facade, mvc.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create facade: %v", err)
	}

	for _, name := range cfg.LogEvents {
		if err := registerLogCommand(facade, logger, name); err != nil {
			log.Fatalf("Failed to register log command: %v", err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle(bridge.NewServer(facade, logger).Handler())

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "Bridge %q listening on %s\n", facade.Name(), cfg.Address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Bridge server failed: %v", err)
	}
}

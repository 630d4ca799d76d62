package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
	"github.com/vovakirdan/tui-mazechase/internal/spectate"
)

var flagHTTPAddr string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream an attract session to websocket spectators",
	Long: `Run an attract-mode game on the server and stream JSON snapshots of
it to every client connected to GET /watch. GET /snapshot returns the
latest frame once.

Examples:
  mazechase watch
  mazechase watch --http :9000 --fps 20`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
}

func runWatch(_ *cobra.Command, _ []string) {
	logger := newLogger("mazechase-watch", logLevel())

	sched, err := mazechase.NewScheduler(sim.WithLogger(logger.WithPrefix("sim")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := spectate.NewHub(sched, flagFPS, logger)
	go hub.Run(ctx)

	server := &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           hub,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	logger.Info("serving spectators", "address", flagHTTPAddr, "route", spectate.URIWatch)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/swipeai/deskassist/internal/assistant"
	"github.com/swipeai/deskassist/internal/config"
	"github.com/swipeai/deskassist/internal/extract"
	"github.com/swipeai/deskassist/internal/ingest"
	"github.com/swipeai/deskassist/internal/llm"
	"github.com/swipeai/deskassist/internal/server"
	"github.com/swipeai/deskassist/internal/store"
	"github.com/swipeai/deskassist/internal/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("CRITICAL: failed to load configuration: %v", err)
	}

	storeClient, err := store.New(cfg.Store)
	if err != nil {
		log.Fatalf("CRITICAL: failed to create object-store client: %v", err)
	}

	ingestor := ingest.New(storeClient, extract.PDFExtractor{}, ingest.Config{
		DocumentBucket: cfg.Store.DocumentBucket,
		ExtractBucket:  cfg.Store.ExtractBucket,
	})

	translator := translate.New()
	asker := assistant.New(llm.NewClient(cfg.Model), translator)
	srv := server.New(ingestor, asker, translator)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Assistant listening.", "addr", cfg.ListenAddr, "model", cfg.Model.Model)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("CRITICAL: server terminated: %v", err)
	}
	slog.Info("Assistant stopped.")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/asareb/pharmahub/backend/internal/config"
	"github.com/asareb/pharmahub/backend/internal/handler"
	"github.com/asareb/pharmahub/backend/internal/model/knowledge"
	botservice "github.com/asareb/pharmahub/backend/internal/service/bot"
	chatservice "github.com/asareb/pharmahub/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := knowledge.NewMemoryStore(knowledge.Seed(), knowledge.Weights{
		Tag:      cfg.Bot.TagWeight,
		Title:    cfg.Bot.TitleWeight,
		Category: cfg.Bot.CategoryWeight,
	})
	chatService := chatservice.NewService()
	engine := botservice.NewEngine(store, botservice.Config{
		SearchLimit:     cfg.Bot.SearchLimit,
		MaxQuickReplies: cfg.Bot.MaxQuickReplies,
	})

	router := handler.NewRouter(store, chatService, engine, cfg.Bot.HistoryWindow)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("PharmaHub assistant backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

package ws

import (
	"context"
	"strings"
	"testing"

	"github.com/asareb/pharmahub/backend/internal/model/knowledge"
	botservice "github.com/asareb/pharmahub/backend/internal/service/bot"
	chatservice "github.com/asareb/pharmahub/backend/internal/service/chat"
)

func setupHandler() (*Handler, *chatservice.Service) {
	store := knowledge.NewMemoryStore(knowledge.Seed(), knowledge.DefaultWeights())
	chatSvc := chatservice.NewService()
	engine := botservice.NewEngine(store, botservice.Config{
		Pick: func(int) int { return 0 },
	})
	return New(chatSvc, engine, 10), chatSvc
}

func TestHandleTurn(t *testing.T) {
	handler, chatSvc := setupHandler()
	ctx := context.Background()

	session, err := chatSvc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	frame := handler.handleTurn(ctx, session.ID, "hello there")
	if frame.Error != "" {
		t.Fatalf("unexpected error: %s", frame.Error)
	}
	if !strings.HasPrefix(frame.Response, "Akwaaba!") {
		t.Fatalf("expected greeting response, got %q", frame.Response)
	}

	// Both turns must land in the session log.
	transcript, err := chatSvc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("expected 2 persisted messages, got %d", len(transcript))
	}
}

func TestHandleTurnEmptyMessage(t *testing.T) {
	handler, chatSvc := setupHandler()
	ctx := context.Background()

	session, err := chatSvc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	frame := handler.handleTurn(ctx, session.ID, "   ")
	if frame.Error == "" {
		t.Fatal("expected an error frame for blank message")
	}
}

func TestHandleTurnUnknownSession(t *testing.T) {
	handler, _ := setupHandler()

	frame := handler.handleTurn(context.Background(), "missing", "hello")
	if frame.Error == "" {
		t.Fatal("expected an error frame for unknown session")
	}
}

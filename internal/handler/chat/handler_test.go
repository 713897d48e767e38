package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/asareb/pharmahub/backend/internal/model/knowledge"
	botservice "github.com/asareb/pharmahub/backend/internal/service/bot"
	chatservice "github.com/asareb/pharmahub/backend/internal/service/chat"
)

func setupRouter() *chi.Mux {
	store := knowledge.NewMemoryStore(knowledge.Seed(), knowledge.DefaultWeights())
	chatSvc := chatservice.NewService()
	engine := botservice.NewEngine(store, botservice.Config{
		Pick: func(int) int { return 0 },
	})
	handler := New(chatSvc, engine, 10)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(t *testing.T, r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func decodeChat(t *testing.T, resp *httptest.ResponseRecorder) chatResponse {
	t.Helper()
	var decoded chatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return decoded
}

func TestChatMissingMessage(t *testing.T) {
	r := setupRouter()

	if resp := postChat(t, r, map[string]string{}); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if resp := postChat(t, r, map[string]string{"message": "   "}); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", resp.Code)
	}
}

func TestChatCreatesSessionWhenAbsent(t *testing.T) {
	r := setupRouter()

	resp := postChat(t, r, map[string]string{"message": "hello there"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	decoded := decodeChat(t, resp)
	if decoded.SessionID == "" {
		t.Fatal("expected a generated session id")
	}
	if !strings.HasPrefix(decoded.Response, "Akwaaba!") {
		t.Fatalf("expected greeting response, got %q", decoded.Response)
	}
	if len(decoded.QuickReplies) != 4 {
		t.Fatalf("expected 4 quick replies, got %d", len(decoded.QuickReplies))
	}
}

func TestChatContinuationAcrossTurns(t *testing.T) {
	r := setupRouter()

	first := decodeChat(t, postChat(t, r, map[string]string{"message": "what about pain relief"}))
	if first.SessionID == "" {
		t.Fatal("expected a session id on the first turn")
	}

	resp := postChat(t, r, map[string]string{
		"message":   "any alternative?",
		"sessionId": first.SessionID,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	second := decodeChat(t, resp)
	if second.SessionID != first.SessionID {
		t.Fatal("expected the session to be reused")
	}
	if !strings.Contains(second.Response, "Diclofenac") {
		t.Fatalf("expected pain comparison answer, got %q", second.Response)
	}
}

func TestChatUnknownSessionStartsFresh(t *testing.T) {
	r := setupRouter()

	decoded := decodeChat(t, postChat(t, r, map[string]string{
		"message":   "hello",
		"sessionId": "does-not-exist",
	}))
	if decoded.SessionID == "" || decoded.SessionID == "does-not-exist" {
		t.Fatalf("expected a fresh session id, got %q", decoded.SessionID)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	r := setupRouter()

	turn := decodeChat(t, postChat(t, r, map[string]string{"message": "hello there"}))

	req := httptest.NewRequest(http.MethodGet, "/chat/history/"+turn.SessionID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var decoded struct {
		SessionID string `json:"sessionId"`
		Messages  []struct {
			Sender       string   `json:"sender"`
			Content      string   `json:"content"`
			QuickReplies []string `json:"quickReplies"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(decoded.Messages) != 2 {
		t.Fatalf("expected 2 messages (user + bot), got %d", len(decoded.Messages))
	}
	if decoded.Messages[0].Sender != "user" || decoded.Messages[1].Sender != "bot" {
		t.Fatalf("expected user then bot, got [%s %s]", decoded.Messages[0].Sender, decoded.Messages[1].Sender)
	}
	if len(decoded.Messages[1].QuickReplies) != 4 {
		t.Fatalf("expected offered quick reply ids recorded on the bot turn, got %d", len(decoded.Messages[1].QuickReplies))
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/chat/history/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

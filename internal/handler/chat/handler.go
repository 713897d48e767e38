package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	botmodel "github.com/asareb/pharmahub/backend/internal/model/bot"
	"github.com/asareb/pharmahub/backend/internal/model/chat"
	botService "github.com/asareb/pharmahub/backend/internal/service/bot"
	chatService "github.com/asareb/pharmahub/backend/internal/service/chat"
	"github.com/asareb/pharmahub/backend/pkg/utils"
)

const defaultHistoryLimit = 50

// Handler serves the assistant chat endpoints.
type Handler struct {
	chatSvc       *chatService.Service
	engine        *botService.Engine
	historyWindow int
}

// New creates the chat handler. historyWindow caps the recent-history slice
// handed to the response engine per turn.
func New(chatSvc *chatService.Service, engine *botService.Engine, historyWindow int) *Handler {
	if historyWindow <= 0 {
		historyWindow = 10
	}
	return &Handler{
		chatSvc:       chatSvc,
		engine:        engine,
		historyWindow: historyWindow,
	}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Post("/chat", h.handleChat)
	r.Get("/chat/history/{sessionID}", h.handleHistory)
}

// handleCreateSession provisions a session up front, for clients that connect
// over WebSocket before sending their first message.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, session)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type chatResponse struct {
	SessionID    string                `json:"sessionId"`
	Response     string                `json:"response"`
	QuickReplies []botmodel.QuickReply `json:"quickReplies"`
}

// handleChat runs one assistant turn: resolve the session, fetch the recent
// history window, persist the user message, compose the reply, persist it,
// and return it with its quick replies.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx := r.Context()
	session, err := h.resolveSession(r, payload.SessionID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	// History fetch failures degrade to an empty window; context rules that
	// need history simply won't fire.
	history, err := h.chatSvc.RecentWindow(ctx, session.ID, h.historyWindow)
	if err != nil {
		log.Printf("[chat] history fetch failed for session=%s: %v", session.ID, err)
		history = nil
	}

	userMsg := chat.Message{
		SessionID: session.ID,
		Sender:    chat.SenderUser,
		Content:   message,
	}
	if err := h.chatSvc.SaveMessage(ctx, userMsg); err != nil {
		// Never pretend a dropped message succeeded.
		log.Printf("[chat] user message persistence failed for session=%s: %v", session.ID, err)
		utils.RespondError(w, http.StatusServiceUnavailable, "assistant unavailable")
		return
	}

	response := h.engine.Respond(ctx, message, history)

	botMsg := chat.Message{
		SessionID:    session.ID,
		Sender:       chat.SenderBot,
		Content:      response.Answer,
		QuickReplies: quickReplyIDs(response.QuickReplies),
	}
	if err := h.chatSvc.SaveMessage(ctx, botMsg); err != nil {
		log.Printf("[chat] bot message persistence failed for session=%s: %v", session.ID, err)
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{
		SessionID:    session.ID,
		Response:     response.Answer,
		QuickReplies: response.QuickReplies,
	})
}

// handleHistory returns the stored message log for a session, bounded to the
// most recent messages.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	messages, err := h.chatSvc.RecentWindow(r.Context(), sessionID, limit)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId": sessionID,
		"messages":  messages,
	})
}

// resolveSession reuses the supplied session when it exists; an absent or
// unknown id starts a fresh conversation.
func (h *Handler) resolveSession(r *http.Request, sessionID string) (chat.Session, error) {
	ctx := r.Context()
	if sessionID != "" {
		session, err := h.chatSvc.GetSession(ctx, sessionID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, chatService.ErrSessionNotFound) {
			return chat.Session{}, err
		}
	}
	return h.chatSvc.CreateSession(ctx)
}

func quickReplyIDs(replies []botmodel.QuickReply) []string {
	if len(replies) == 0 {
		return nil
	}
	ids := make([]string, 0, len(replies))
	for _, reply := range replies {
		ids = append(ids, reply.ID)
	}
	return ids
}

package ws

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	botmodel "github.com/asareb/pharmahub/backend/internal/model/bot"
	"github.com/asareb/pharmahub/backend/internal/model/chat"
	botService "github.com/asareb/pharmahub/backend/internal/service/bot"
	chatService "github.com/asareb/pharmahub/backend/internal/service/chat"
	"github.com/asareb/pharmahub/backend/pkg/utils"
)

// Handler serves the live chat widget over a WebSocket connection. Each frame
// carries one user turn and receives exactly one assistant reply, mirroring
// the REST endpoint's contract.
type Handler struct {
	chatSvc       *chatService.Service
	engine        *botService.Engine
	historyWindow int
	upgrader      websocket.Upgrader
}

// New creates the WebSocket chat handler.
func New(chatSvc *chatService.Service, engine *botService.Engine, historyWindow int) *Handler {
	if historyWindow <= 0 {
		historyWindow = 10
	}
	return &Handler{
		chatSvc:       chatSvc,
		engine:        engine,
		historyWindow: historyWindow,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the WebSocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws/{sessionID}", h.handleWebSocket)
}

type inboundFrame struct {
	Message string `json:"message"`
}

type outboundFrame struct {
	SessionID    string                `json:"sessionId"`
	Response     string                `json:"response,omitempty"`
	QuickReplies []botmodel.QuickReply `json:"quickReplies,omitempty"`
	Error        string                `json:"error,omitempty"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", session.ID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", session.ID)

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed for session=%s: %v", session.ID, err)
			}
			return
		}

		reply := h.handleTurn(r.Context(), session.ID, frame.Message)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[ws] write failed for session=%s: %v", session.ID, err)
			return
		}
	}
}

// handleTurn runs the same persist-respond-persist sequence as the REST
// endpoint for one frame.
func (h *Handler) handleTurn(ctx context.Context, sessionID, rawMessage string) outboundFrame {
	message := strings.TrimSpace(rawMessage)
	if message == "" {
		return outboundFrame{SessionID: sessionID, Error: "message is required"}
	}

	history, err := h.chatSvc.RecentWindow(ctx, sessionID, h.historyWindow)
	if err != nil {
		log.Printf("[ws] history fetch failed for session=%s: %v", sessionID, err)
		history = nil
	}

	userMsg := chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderUser,
		Content:   message,
	}
	if err := h.chatSvc.SaveMessage(ctx, userMsg); err != nil {
		log.Printf("[ws] user message persistence failed for session=%s: %v", sessionID, err)
		return outboundFrame{SessionID: sessionID, Error: "assistant unavailable"}
	}

	response := h.engine.Respond(ctx, message, history)

	botMsg := chat.Message{
		SessionID:    sessionID,
		Sender:       chat.SenderBot,
		Content:      response.Answer,
		QuickReplies: quickReplyIDs(response.QuickReplies),
	}
	if err := h.chatSvc.SaveMessage(ctx, botMsg); err != nil {
		log.Printf("[ws] bot message persistence failed for session=%s: %v", sessionID, err)
	}

	return outboundFrame{
		SessionID:    sessionID,
		Response:     response.Answer,
		QuickReplies: response.QuickReplies,
	}
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

package knowledge

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asareb/pharmahub/backend/internal/model/knowledge"
	"github.com/asareb/pharmahub/backend/pkg/utils"
)

// Handler exposes the help-topic catalog to the storefront.
type Handler struct {
	store knowledge.Store
}

// New creates the topic handler.
func New(store knowledge.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the topic routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/topics", h.handleListTopics)
	r.Get("/topics/{topicID}", h.handleGetTopic)
}

type topicSummary struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Category  knowledge.Category `json:"category"`
	FollowUps []string           `json:"followUps,omitempty"`
}

// handleListTopics lists the catalog without answer bodies, for the help page
// index.
func (h *Handler) handleListTopics(w http.ResponseWriter, r *http.Request) {
	entries := h.store.List()
	topics := make([]topicSummary, 0, len(entries))
	for _, entry := range entries {
		topics = append(topics, topicSummary{
			ID:        entry.ID,
			Title:     entry.Title,
			Category:  entry.Category,
			FollowUps: entry.FollowUps,
		})
	}
	utils.RespondJSON(w, http.StatusOK, topics)
}

// handleGetTopic returns one full entry including its canned answer.
func (h *Handler) handleGetTopic(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicID")
	entry, ok := h.store.FindByID(topicID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "topic not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, entry)
}

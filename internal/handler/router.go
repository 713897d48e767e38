package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	chatHandler "github.com/asareb/pharmahub/backend/internal/handler/chat"
	knowledgeHandler "github.com/asareb/pharmahub/backend/internal/handler/knowledge"
	wsHandler "github.com/asareb/pharmahub/backend/internal/handler/ws"
	knowledgeModel "github.com/asareb/pharmahub/backend/internal/model/knowledge"
	botService "github.com/asareb/pharmahub/backend/internal/service/bot"
	chatService "github.com/asareb/pharmahub/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(store knowledgeModel.Store, chatSvc *chatService.Service, engine *botService.Engine, historyWindow int) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler)

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(chatSvc, engine, historyWindow).RegisterRoutes(api)
		knowledgeHandler.New(store).RegisterRoutes(api)
		wsHandler.New(chatSvc, engine, historyWindow).RegisterRoutes(api)
	})

	return r
}

package api

import (
	"github.com/AndrewMorgan2/Spritied-Towards/internal/config"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/constants"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/storage"

	"github.com/gin-gonic/gin"
)

// SessionHandler groups all session-related HTTP handlers.
type SessionHandler struct {
	repo     storage.Repository
	chapters *config.LoadedConfig
	hub      *Hub
}

// NewSessionHandler creates a new SessionHandler with the given repository,
// chapter table and event hub.
func NewSessionHandler(repo storage.Repository, chapters *config.LoadedConfig, hub *Hub) *SessionHandler {
	return &SessionHandler{repo: repo, chapters: chapters, hub: hub}
}

// RegisterRoutes attaches every API route to the router.
func RegisterRoutes(router *gin.Engine, h *SessionHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteChapters, h.ListChapters)
		apiRoutes.GET(constants.RouteCards, h.ListCards)

		apiRoutes.POST(constants.RouteSessions, h.CreateSession)
		apiRoutes.GET(constants.RouteSessionByCode, h.GetSession)
		apiRoutes.POST(constants.RouteSessionPlay, h.PlayCard)
		apiRoutes.POST(constants.RouteSessionEndTurn, h.EndTurn)
		apiRoutes.POST(constants.RouteSessionAdvance, h.Advance)
		apiRoutes.GET(constants.RouteSessionEvents, h.StreamEvents)

		apiRoutes.GET(constants.RouteVersion, Version)
	}
	router.GET(constants.RouteHealth, Health)
}

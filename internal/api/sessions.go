package api

import (
	"net/http"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/constants"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	ChapterKey string `json:"chapter_key"`
	PlayerName string `json:"player_name"`
}

// CreateSession starts a new combat session. Without a chapter_key the
// session begins at the entry chapter.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	// An empty body is fine; it means "start at the beginning".
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
	}

	s, err := service.CreateSession(h.repo, h.chapters, req.ChapterKey, req.PlayerName)
	if err != nil {
		if err == service.ErrChapterNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrChapterNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreate})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GetSession returns the current state of a session, closed or not.
func (h *SessionHandler) GetSession(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	s, err := service.GetSession(h.repo, code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	c.JSON(http.StatusOK, s)
}

package api

import (
	"net/http"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/constants"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/engine"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/service"

	"github.com/gin-gonic/gin"
)

type PlayCardRequest struct {
	CardIndex int `json:"card_index"`
}

// actionResponse pairs the updated session with the events the action
// produced, so clients can animate without a second fetch.
type actionResponse struct {
	Session *game.Session       `json:"session"`
	Result  *game.ActionOutcome `json:"result"`
}

// PlayCard resolves one card play for the addressed session.
func (h *SessionHandler) PlayCard(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	var req PlayCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	s, out, err := service.PlayCard(h.repo, code, req.CardIndex)
	if err != nil {
		respondActionError(c, err)
		return
	}
	h.hub.Broadcast(code, out)
	c.JSON(http.StatusOK, actionResponse{Session: s, Result: out})
}

// EndTurn hands the turn to the hostiles and resolves their strikes.
func (h *SessionHandler) EndTurn(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}

	s, out, err := service.EndTurn(h.repo, code)
	if err != nil {
		respondActionError(c, err)
		return
	}
	h.hub.Broadcast(code, out)
	c.JSON(http.StatusOK, actionResponse{Session: s, Result: out})
}

// Advance moves a concluded session forward in the story.
func (h *SessionHandler) Advance(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}

	s, err := service.AdvanceChapter(h.repo, h.chapters, code)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func respondActionError(c *gin.Context, err error) {
	switch err {
	case service.ErrSessionNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
	case service.ErrSessionClosed:
		c.JSON(http.StatusGone, gin.H{constants.JSONKeyError: constants.ErrSessionClosed})
	case service.ErrEncounterOngoing:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEncounterOngoing})
	case engine.ErrNotPlayerTurn:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotPlayerTurn})
	case engine.ErrInvalidCardIndex:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCardIndex})
	case engine.ErrEncounterConcluded:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEncounterOver})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdate})
	}
}

package api

import (
	"net/http"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"

	"github.com/gin-gonic/gin"
)

// chapterView is the public shape of a chapter: everything a client needs
// to present the story, minus encounter tuning it should not peek at.
type chapterView struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	StoryText  []string `json:"story_text"`
	Background string   `json:"background"`
	Final      bool     `json:"final"`
}

// ListChapters returns the story's chapter table in order.
func (h *SessionHandler) ListChapters(c *gin.Context) {
	out := make([]chapterView, 0, len(h.chapters.Chapters))
	for i := range h.chapters.Chapters {
		ch := &h.chapters.Chapters[i]
		out = append(out, chapterView{
			Key:        ch.Key,
			Title:      ch.Title,
			StoryText:  ch.StoryText,
			Background: ch.Background,
			Final:      ch.Final(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListCards returns the card catalog with rule text.
func (h *SessionHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, game.Catalog)
}

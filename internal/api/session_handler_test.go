package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/config"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.OpenAndMigrate("file::memory:?cache=shared")
	require.NoError(t, err)
	repo := storage.NewSQLiteRepository(db)

	cfg := &config.LoadedConfig{Chapters: []game.Chapter{
		{
			Key:             "forest",
			Title:           "The Magic Forest",
			StoryText:       []string{"You awake in a magic forest"},
			PlayerMaxHealth: 100,
			Hostiles: []game.HostileConfig{
				{Name: "Gloom", MaxHealth: 10, AttackDamage: 15},
			},
			InitialHand:         []game.CardKind{game.CardFire, game.CardIce},
			AdvanceDelaySeconds: 5,
			NextChapter:         "fort",
		},
		{
			Key:             "fort",
			Title:           "The Fort",
			PlayerMaxHealth: 100,
			Hostiles: []game.HostileConfig{
				{Name: "Warden", MaxHealth: 21, AttackDamage: 25},
			},
			InitialHand: []game.CardKind{game.CardIce, game.CardEarth, game.CardCrystal},
		},
	}}

	router := gin.New()
	RegisterRoutes(router, NewSessionHandler(repo, cfg, NewHub()))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/sessions", gin.H{"player_name": "Rin"})
	require.Equal(t, http.StatusCreated, w.Code)
	var s game.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	require.Equal(t, "forest", s.ChapterKey)
	require.Len(t, s.JoinCode, 8)

	w = doJSON(t, router, http.MethodGet, "/api/sessions/"+s.JoinCode, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Boosted fire fells the 10-health hostile.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/sessions/%s/play", s.JoinCode), gin.H{"card_index": 0})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Session game.Session       `json:"session"`
		Result  game.ActionOutcome `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, game.OutcomeVictory, resp.Result.Outcome)

	// Further actions on the concluded encounter are rejected.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/sessions/%s/end-turn", s.JoinCode), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/sessions/%s/advance", s.JoinCode), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var next game.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	require.Equal(t, "fort", next.ChapterKey)
	require.NotEqual(t, s.JoinCode, next.JoinCode)

	// The concluded session is now closed.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/sessions/%s/play", s.JoinCode), gin.H{"card_index": 0})
	require.Equal(t, http.StatusGone, w.Code)
}

func TestBadRequests(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/sessions/short", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/sessions/ZZZZ9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/sessions", gin.H{"chapter_key": "swamp"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/chapters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chapters []chapterView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chapters))
	require.Len(t, chapters, 2)
	require.False(t, chapters[0].Final)
	require.True(t, chapters[1].Final)

	w = doJSON(t, router, http.MethodGet, "/api/cards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cards []game.CardSpec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 6)
}

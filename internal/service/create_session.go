package service

import (
	"math/rand"
	"strings"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/engine"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"
	"github.com/google/uuid"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// newJoinCode creates a short alphanumeric code clients use to address
// their session.
func newJoinCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// CreateSession starts a new combat session on the given chapter. An empty
// chapterKey starts at the entry chapter. The session is persisted with a
// fresh UUID and join code before being returned.
func CreateSession(repo SessionRepo, chapters ChapterSource, chapterKey, playerName string) (*game.Session, error) {
	var ch *game.Chapter
	if strings.TrimSpace(chapterKey) == "" {
		ch = chapters.Entry()
	} else {
		ch = chapters.Chapter(chapterKey)
	}
	if ch == nil {
		return nil, ErrChapterNotFound
	}

	if strings.TrimSpace(playerName) == "" {
		playerName = "Adventurer"
	}

	s, err := engine.NewSession(ch, playerName)
	if err != nil {
		return nil, err
	}
	s.SessionUUID = uuid.NewString()
	s.JoinCode = newJoinCode()

	if err := repo.CreateSession(s); err != nil {
		return nil, err
	}
	logging.Info("session created", logging.Fields{
		"session_uuid": s.SessionUUID,
		"join_code":    s.JoinCode,
		"chapter":      s.ChapterKey,
	})
	return s, nil
}

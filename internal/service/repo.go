package service

import (
	"errors"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
)

// SessionRepo is the minimal repository interface the session operations
// need. storage.Repository satisfies it.
type SessionRepo interface {
	CreateSession(s *game.Session) error
	FindSessionByJoinCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error
}

// ChapterSource resolves chapter keys to their encounter configuration.
// config.LoadedConfig satisfies it.
type ChapterSource interface {
	Chapter(key string) *game.Chapter
	Entry() *game.Chapter
}

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionClosed    = errors.New("session is closed")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrEncounterOngoing = errors.New("encounter still in progress")
)

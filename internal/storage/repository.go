package storage

import (
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
)

type Repository interface {
	CreateSession(s *game.Session) error
	GetSessionByUUID(uuid string) (*game.Session, error)
	FindSessionByJoinCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	DeleteSession(s *game.Session) error
	// FindStaleSessions returns sessions last touched at or before the
	// provided time. The janitor decides what to do with them.
	FindStaleSessions(cutoff time.Time) ([]game.Session, error)
}

package service

import (
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"
)

// JanitorRepo is the minimal repository interface stale-session cleanup
// needs.
type JanitorRepo interface {
	FindStaleSessions(cutoff time.Time) ([]game.Session, error)
	DeleteSession(s *game.Session) error
}

// CleanupStaleSessions deletes sessions untouched for longer than ttl and
// returns how many were removed. Failures are logged and skipped so one
// bad row never wedges the sweep.
func CleanupStaleSessions(repo JanitorRepo, ttl time.Duration) int {
	stale, err := repo.FindStaleSessions(time.Now().Add(-ttl))
	if err != nil {
		logging.Error("failed to list stale sessions", err, nil)
		return 0
	}
	removed := 0
	for i := range stale {
		if err := repo.DeleteSession(&stale[i]); err != nil {
			logging.Error("failed to delete stale session", err, logging.Fields{
				"join_code": stale[i].JoinCode,
			})
			continue
		}
		removed++
	}
	if removed > 0 {
		logging.Info("stale sessions removed", logging.Fields{"count": removed})
	}
	return removed
}

package service

import (
	"github.com/AndrewMorgan2/Spritied-Towards/internal/engine"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"
)

// PlayCard resolves one card play for the session addressed by join code
// and persists the result. Engine rejections (wrong turn, bad index,
// concluded encounter) pass through unchanged and leave the stored
// session untouched.
func PlayCard(repo SessionRepo, code string, cardIndex int) (*game.Session, *game.ActionOutcome, error) {
	s, err := loadActive(repo, code)
	if err != nil {
		return nil, nil, err
	}

	out, err := engine.PlayCard(s, cardIndex)
	if err != nil {
		return nil, nil, err
	}

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	logging.Debug("card played", logging.Fields{
		"join_code": s.JoinCode,
		"outcome":   string(out.Outcome),
	})
	return s, out, nil
}

// EndTurn hands the turn to the hostiles, resolves their strikes and
// persists the result.
func EndTurn(repo SessionRepo, code string) (*game.Session, *game.ActionOutcome, error) {
	s, err := loadActive(repo, code)
	if err != nil {
		return nil, nil, err
	}

	out, err := engine.EndTurn(s)
	if err != nil {
		return nil, nil, err
	}

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, out, nil
}

// GetSession returns the stored session for a join code, closed or not.
func GetSession(repo SessionRepo, code string) (*game.Session, error) {
	s, err := repo.FindSessionByJoinCode(code)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func loadActive(repo SessionRepo, code string) (*game.Session, error) {
	s, err := repo.FindSessionByJoinCode(code)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if s.Status != game.StatusActive {
		return nil, ErrSessionClosed
	}
	return s, nil
}

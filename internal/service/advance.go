package service

import (
	"github.com/AndrewMorgan2/Spritied-Towards/internal/dedupe"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"
)

// AdvanceChapter moves a concluded session forward in the story. After a
// victory on a chapter with a successor it closes the session and opens a
// new one on the next chapter, returned with its own join code. After a
// defeat, or a victory on the final chapter, it just closes the session.
// Concurrent calls for the same join code collapse into one advance.
func AdvanceChapter(repo SessionRepo, chapters ChapterSource, code string) (*game.Session, error) {
	v, err, _ := dedupe.AdvanceGroup.Do(code, func() (interface{}, error) {
		return advanceChapter(repo, chapters, code)
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Session), nil
}

func advanceChapter(repo SessionRepo, chapters ChapterSource, code string) (*game.Session, error) {
	s, err := loadActive(repo, code)
	if err != nil {
		return nil, err
	}
	if s.Outcome == game.OutcomeOngoing {
		return nil, ErrEncounterOngoing
	}

	s.Status = game.StatusClosed
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}

	if s.Outcome == game.OutcomeDefeat || s.NextChapterKey == "" {
		logging.Info("session closed", logging.Fields{
			"join_code": s.JoinCode,
			"outcome":   string(s.Outcome),
		})
		return s, nil
	}

	next, err := CreateSession(repo, chapters, s.NextChapterKey, s.PlayerName)
	if err != nil {
		return nil, err
	}
	logging.Info("story advanced", logging.Fields{
		"join_code":      s.JoinCode,
		"next_join_code": next.JoinCode,
		"chapter":        next.ChapterKey,
	})
	return next, nil
}

package engine

import "github.com/AndrewMorgan2/Spritied-Towards/internal/game"

// NewSession builds a fresh combat session from a chapter's encounter
// configuration. Configuration problems surface here, never mid-encounter.
// Identity fields (UUID, join code) are left for the caller to assign.
func NewSession(ch *game.Chapter, playerName string) (*game.Session, error) {
	if len(ch.Hostiles) == 0 {
		return nil, ErrNoHostiles
	}
	if ch.PlayerMaxHealth <= 0 {
		return nil, ErrBadPlayerHealth
	}

	s := &game.Session{
		ChapterKey: ch.Key,
		PlayerName: playerName,

		PlayerHealth:    ch.PlayerMaxHealth,
		PlayerMaxHealth: ch.PlayerMaxHealth,

		Turn:               game.TurnPlayer,
		FirstCardAvailable: true,

		Outcome: game.OutcomeOngoing,
		Status:  game.StatusActive,
		Message: "The encounter begins. Play a card.",

		AdvanceDelaySeconds: ch.AdvanceDelaySeconds,
		NextChapterKey:      ch.NextChapter,
	}

	for _, hc := range ch.Hostiles {
		if hc.MaxHealth <= 0 {
			return nil, ErrBadHostile
		}
		s.Hostiles = append(s.Hostiles, game.Hostile{
			Name:         hc.Name,
			Sprite:       hc.Sprite,
			Health:       hc.MaxHealth,
			MaxHealth:    hc.MaxHealth,
			AttackDamage: hc.AttackDamage,
		})
	}

	for i, kind := range ch.InitialHand {
		if !game.ValidCardKind(kind) {
			return nil, ErrUnknownCardKind
		}
		s.Hand = append(s.Hand, game.HandCard{Kind: kind, Position: i})
	}

	return s, nil
}

package engine

import (
	"math"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
)

// EndTurn hands the turn to the hostiles and resolves their strike. The
// enemy turn runs to completion inside this call: every living hostile's
// fixed damage is summed against the player, and unless the player falls
// the turn passes straight back. Queued bonus cards are granted at the
// boundary, before the strike.
//
// Ending a turn that is not the player's is a no-op: the call reports the
// current standing and changes nothing.
func EndTurn(s *game.Session) (*game.ActionOutcome, error) {
	if s.Outcome != game.OutcomeOngoing {
		return nil, ErrEncounterConcluded
	}

	ec := newEncounterContext(s)
	if s.Turn != game.TurnPlayer {
		return ec.outcome(), nil
	}

	if s.PendingBonusCards > 0 {
		n := s.PendingBonusCards
		for i := 0; i < n; i++ {
			s.Hand = append(s.Hand, game.HandCard{
				SessionID: s.ID,
				Kind:      game.CardAir,
				Position:  len(s.Hand),
			})
		}
		s.PendingBonusCards = 0
		ec.add(game.Event{Type: game.EventCardsGranted, Card: game.CardAir, Count: n})
	}

	s.Turn = game.TurnEnemy
	ec.add(game.Event{Type: game.EventTurnChanged, Turn: game.TurnEnemy})

	// Each living hostile strikes once; the damages sum against the one
	// player-side target, so iteration order carries no weight.
	var total float64
	for _, h := range s.LivingHostiles() {
		total += h.AttackDamage
		ec.add(game.Event{
			Type:   game.EventDamageDealt,
			Actor:  h.Name,
			Target: s.PlayerName,
			Amount: h.AttackDamage,
		})
	}
	s.PlayerHealth = math.Max(0, s.PlayerHealth-total)

	ec.evaluateOutcome()
	if s.Outcome == game.OutcomeOngoing {
		// A fresh player turn re-arms the first-card bonus. The play
		// history and the crystal/turn accumulators deliberately carry
		// over unchanged.
		s.Turn = game.TurnPlayer
		s.FirstCardAvailable = true
		ec.add(game.Event{Type: game.EventTurnChanged, Turn: game.TurnPlayer})
	}

	return ec.outcome(), nil
}

package engine

import "github.com/AndrewMorgan2/Spritied-Towards/internal/game"

// evaluateOutcome runs after every card play and every enemy strike.
// Idempotent: once a terminal outcome has been announced, re-evaluation
// changes nothing and emits nothing.
func (ec *encounterContext) evaluateOutcome() {
	s := ec.s
	if s.OutcomeAnnounced {
		return
	}

	if len(s.LivingHostiles()) == 0 {
		s.Outcome = game.OutcomeVictory
		s.OutcomeAnnounced = true
		s.Message = "Victory! The way forward is clear."
		ec.add(game.Event{Type: game.EventOutcome, Outcome: game.OutcomeVictory})
		return
	}

	if s.PlayerHealth <= 0 {
		s.Outcome = game.OutcomeDefeat
		s.OutcomeAnnounced = true
		s.Message = "You have fallen."
		ec.add(game.Event{Type: game.EventOutcome, Outcome: game.OutcomeDefeat})
	}
}

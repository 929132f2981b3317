package engine

import (
	"math"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
)

// encounterContext accumulates the events produced while resolving one
// action against a session.
type encounterContext struct {
	s      *game.Session
	events []game.Event
}

func newEncounterContext(s *game.Session) *encounterContext {
	return &encounterContext{s: s, events: make([]game.Event, 0, 8)}
}

func (ec *encounterContext) add(ev game.Event) { ec.events = append(ec.events, ev) }

// outcome packages the accumulated events with the session's current
// standing.
func (ec *encounterContext) outcome() *game.ActionOutcome {
	out := &game.ActionOutcome{
		Events:  ec.events,
		Turn:    ec.s.Turn,
		Outcome: ec.s.Outcome,
	}
	if out.Outcome != game.OutcomeOngoing {
		out.AdvanceDelaySeconds = ec.s.AdvanceDelaySeconds
	}
	return out
}

// damageHostiles applies one computed damage value to every hostile still
// in play. Health is clamped at zero; a hostile reaching zero leaves play
// immediately.
func (ec *encounterContext) damageHostiles(value float64) {
	for i := range ec.s.Hostiles {
		h := &ec.s.Hostiles[i]
		if h.Defeated {
			continue
		}
		h.Health = math.Max(0, h.Health-value)
		ec.add(game.Event{Type: game.EventDamageDealt, Target: h.Name, Amount: value})
		if h.Health <= 0 {
			h.Defeated = true
			ec.add(game.Event{Type: game.EventHostileDown, Target: h.Name})
		}
	}
}

// healHostiles applies one computed healing value to every hostile still in
// play, clamped to each hostile's maximum.
func (ec *encounterContext) healHostiles(value float64) {
	for i := range ec.s.Hostiles {
		h := &ec.s.Hostiles[i]
		if h.Defeated {
			continue
		}
		h.Health = math.Min(h.MaxHealth, h.Health+value)
		ec.add(game.Event{Type: game.EventHealed, Target: h.Name, Amount: value})
	}
}

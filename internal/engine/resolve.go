package engine

import "github.com/AndrewMorgan2/Spritied-Towards/internal/game"

// PlayCard resolves one card play against the session in three phases:
// apply the action (consume the card), resolve its effects on the hostile
// roster and turn state, then evaluate the outcome. Only valid on the
// player's turn while the encounter is ongoing; rejected actions leave the
// session untouched.
func PlayCard(s *game.Session, cardIndex int) (*game.ActionOutcome, error) {
	if s.Outcome != game.OutcomeOngoing {
		return nil, ErrEncounterConcluded
	}
	if s.Turn != game.TurnPlayer {
		return nil, ErrNotPlayerTurn
	}
	if cardIndex < 0 || cardIndex >= len(s.Hand) {
		return nil, ErrInvalidCardIndex
	}

	ec := newEncounterContext(s)
	kind := s.Hand[cardIndex].Kind

	// The value is computed against the state as it stands before any
	// bookkeeping: Earth counts the played card while it is still in hand,
	// Fire reads the first-card flag before it drops.
	value, healing := cardValue(s, kind)
	ec.add(game.Event{Type: game.EventCardPlayed, Card: kind, Amount: value})

	if healing {
		ec.healHostiles(value)
	} else {
		ec.damageHostiles(value)
	}

	if kind == game.CardAir {
		s.PendingBonusCards += game.AirBonusCards
	}
	s.AppendPlayed(kind)
	s.FirstCardAvailable = false
	removeFromHand(s, cardIndex)

	ec.evaluateOutcome()
	return ec.outcome(), nil
}

// cardValue computes what a card resolves to given the current turn state.
// Pure: no session mutation. The healing flag is true only for the Heal
// card's full-health branch, where the value is applied as healing instead
// of damage.
func cardValue(s *game.Session, kind game.CardKind) (value float64, healing bool) {
	played := s.PlayedKinds()

	switch kind {
	case game.CardFire:
		if s.FirstCardAvailable {
			return game.FireBaseDamage + game.FireFirstCardBonus, false
		}
		return game.FireBaseDamage, false

	case game.CardIce:
		dmg := game.IceBaseDamage
		if n := len(played); n > 0 && played[n-1] == game.CardFire {
			dmg *= 2
		}
		// Earth anywhere in the play history shuts Ice down entirely,
		// Fire adjacency notwithstanding.
		for _, c := range played {
			if c == game.CardEarth {
				return 0, false
			}
		}
		return dmg, false

	case game.CardCrystal:
		return game.CrystalBaseDamage +
			game.CrystalComboBonus*float64(len(played)) +
			float64(s.CrystalPower), false

	case game.CardAir:
		return game.AirBaseDamage, false

	case game.CardEarth:
		return game.EarthBaseDamage + float64(len(s.Hand)) + float64(s.TurnCount), false

	case game.CardHeal:
		// Reversed on purpose: a full-health enemy gets healed, a wounded
		// one gets hurt.
		for _, h := range s.LivingHostiles() {
			if h.AtFullHealth() {
				return game.HealBaseDamage, true
			}
		}
		return game.HealBaseDamage, false
	}

	return 0, false
}

// removeFromHand drops the card at index and renumbers the remainder so
// positions stay dense for the presentation layer.
func removeFromHand(s *game.Session, index int) {
	s.Hand = append(s.Hand[:index], s.Hand[index+1:]...)
	for i := range s.Hand {
		s.Hand[i].Position = i
	}
}

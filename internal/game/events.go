package game

// EventType tags one entry in an action's event stream.
type EventType string

const (
	EventCardPlayed   EventType = "card_played"
	EventDamageDealt  EventType = "damage_dealt"
	EventHealed       EventType = "healed"
	EventHostileDown  EventType = "hostile_down"
	EventCardsGranted EventType = "cards_granted"
	EventTurnChanged  EventType = "turn_changed"
	EventOutcome      EventType = "outcome"
)

// Event is one observable consequence of an action. The presentation layer
// replays these to drive damage numbers, card spawns and screen
// transitions; the engine itself never renders anything.
type Event struct {
	Type EventType `json:"type"`
	// Card is set for card_played and cards_granted.
	Card CardKind `json:"card,omitempty"`
	// Actor names the combatant that caused the event (a hostile during the
	// enemy strike; empty for player card plays).
	Actor string `json:"actor,omitempty"`
	// Target names who the amount was applied to.
	Target string  `json:"target,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Count  int     `json:"count,omitempty"`
	// Turn is set for turn_changed.
	Turn TurnOwner `json:"turn,omitempty"`
	// Outcome is set for outcome events.
	Outcome Outcome `json:"outcome,omitempty"`
}

// ActionOutcome is the engine's answer to a single play_card or end_turn
// action: everything that happened, plus where the encounter stands now.
type ActionOutcome struct {
	Events  []Event   `json:"events"`
	Turn    TurnOwner `json:"turn"`
	Outcome Outcome   `json:"outcome"`
	// AdvanceDelaySeconds tells the presentation layer how long to linger on
	// a terminal outcome before advancing or exiting. Zero while ongoing.
	AdvanceDelaySeconds float64 `json:"advance_delay_seconds,omitempty"`
}

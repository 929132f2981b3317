package game

import (
	"strings"

	"gorm.io/gorm"
)

// TurnOwner identifies which side currently holds the turn.
type TurnOwner string

const (
	TurnPlayer TurnOwner = "player"
	TurnEnemy  TurnOwner = "enemy"
)

// Outcome is the terminal result of an encounter, or its absence.
type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// SessionStatus distinguishes playable sessions from ones the caller has
// already left behind (advanced past, or concluded and acknowledged).
type SessionStatus string

const (
	StatusActive SessionStatus = "active"
	StatusClosed SessionStatus = "closed"
)

// Hostile is one enemy combatant in a session. Defeated hostiles stay in
// the roster for display but are out of play: they take no further damage
// and no longer strike.
type Hostile struct {
	gorm.Model
	SessionID    uint    `json:"-"`
	Name         string  `json:"name"`
	Sprite       string  `json:"sprite"`
	Health       float64 `json:"health"`
	MaxHealth    float64 `json:"max_health"`
	AttackDamage float64 `json:"attack_damage"`
	Defeated     bool    `json:"defeated"`
}

// AtFullHealth reports whether the hostile has taken no net damage.
func (h *Hostile) AtFullHealth() bool { return h.Health >= h.MaxHealth }

// HandCard is one playable card in the player's hand. Position preserves
// presentation order; resolution only cares about the kind.
type HandCard struct {
	gorm.Model
	SessionID uint     `json:"-"`
	Kind      CardKind `json:"kind"`
	Position  int      `json:"position"`
}

// Session holds the full mutable state of one combat encounter. All
// mutation flows through the engine package; everything else treats a
// session as read-only.
type Session struct {
	gorm.Model
	SessionUUID string `json:"session_uuid" gorm:"index"`
	JoinCode    string `json:"join_code" gorm:"unique"`
	ChapterKey  string `json:"chapter_key"`
	PlayerName  string `json:"player_name"`

	PlayerHealth    float64 `json:"player_health"`
	PlayerMaxHealth float64 `json:"player_max_health"`

	Turn      TurnOwner `json:"turn"`
	TurnCount int       `json:"turn_count"`

	// FirstCardAvailable is true exactly while zero cards have been played
	// since the player's turn began; Fire reads it for its opening bonus.
	FirstCardAvailable bool `json:"first_card_available"`

	// PlayedCards is the ordered, comma-joined record of every card kind
	// played in this encounter. It is never cleared at turn boundaries, so
	// combo rules (Ice, Crystal, Earth) read the whole history. CrystalPower
	// and TurnCount likewise keep their initial values; the between-turn
	// reset pass that would advance them is disabled.
	PlayedCards       string `json:"played_cards"`
	CrystalPower      int    `json:"crystal_power"`
	PendingBonusCards int    `json:"pending_bonus_cards"`

	Hand     []HandCard `json:"hand"`
	Hostiles []Hostile  `json:"hostiles"`

	Outcome          Outcome       `json:"outcome"`
	OutcomeAnnounced bool          `json:"-"`
	Status           SessionStatus `json:"status"`
	Message          string        `json:"message"`

	// AdvanceDelaySeconds and NextChapterKey are copied from the chapter
	// configuration at setup so a concluded session carries its own
	// follow-up instructions for the presentation layer.
	AdvanceDelaySeconds float64 `json:"advance_delay_seconds"`
	NextChapterKey      string  `json:"next_chapter_key"`
}

// Store encounters in a dedicated table named after the domain term.
func (Session) TableName() string { return "combat_sessions" }

// PlayedKinds parses PlayedCards into the ordered card-kind history.
func (s *Session) PlayedKinds() []CardKind {
	if s.PlayedCards == "" {
		return nil
	}
	parts := strings.Split(s.PlayedCards, ",")
	kinds := make([]CardKind, 0, len(parts))
	for _, p := range parts {
		kinds = append(kinds, CardKind(p))
	}
	return kinds
}

// AppendPlayed records a card kind at the end of the play history.
func (s *Session) AppendPlayed(k CardKind) {
	if s.PlayedCards == "" {
		s.PlayedCards = string(k)
		return
	}
	s.PlayedCards += "," + string(k)
}

// LivingHostiles returns pointers to the hostiles still in play.
func (s *Session) LivingHostiles() []*Hostile {
	out := make([]*Hostile, 0, len(s.Hostiles))
	for i := range s.Hostiles {
		if !s.Hostiles[i].Defeated {
			out = append(out, &s.Hostiles[i])
		}
	}
	return out
}

package game

// HostileConfig is the static definition of one enemy in a chapter's
// encounter. Sprite is an opaque asset identifier for the presentation
// layer; the engine never interprets it.
type HostileConfig struct {
	Name         string  `json:"name"`
	Sprite       string  `json:"sprite"`
	MaxHealth    float64 `json:"max_health"`
	AttackDamage float64 `json:"attack_damage"`
}

// Chapter is one entry in the story's data table: the narrative screens
// leading into an encounter plus the encounter's tuning. Chapters are
// loaded from the configuration file and never mutated at runtime.
type Chapter struct {
	Key   string `json:"key"`
	Title string `json:"title"`

	// StoryText holds the narrative lines shown before the fight, in order.
	StoryText []string `json:"story_text"`

	// Opaque asset identifiers, passed straight through to clients.
	Background   string `json:"background"`
	PlayerSprite string `json:"player_sprite"`

	PlayerMaxHealth float64         `json:"player_max_health"`
	Hostiles        []HostileConfig `json:"hostile_list"`
	InitialHand     []CardKind      `json:"initial_hand"`

	// AdvanceDelaySeconds is how long the presentation layer lingers on the
	// victory or defeat screen before moving on.
	AdvanceDelaySeconds float64 `json:"advance_delay_seconds"`

	// NextChapter is the key of the chapter that follows a victory here.
	// Empty for the final chapter: victory there ends the story.
	NextChapter string `json:"next_chapter"`
}

// Final reports whether victory in this chapter concludes the story.
func (c *Chapter) Final() bool { return c.NextChapter == "" }

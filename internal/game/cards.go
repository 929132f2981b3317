package game

// CardKind enumerates the playable card kinds. The catalog is static;
// entries are never mutated at runtime.
type CardKind string

const (
	CardFire    CardKind = "fire"
	CardIce     CardKind = "ice"
	CardAir     CardKind = "air"
	CardEarth   CardKind = "earth"
	CardCrystal CardKind = "crystal"
	CardHeal    CardKind = "heal"
)

// Base damage tuning. These values are shared by every chapter; per-chapter
// variation lives entirely in the encounter configuration.
const (
	FireBaseDamage     = 8.0
	FireFirstCardBonus = 7.0

	IceBaseDamage = 6.0

	CrystalBaseDamage = 4.0
	// CrystalComboBonus is added once per card already played when Crystal
	// resolves.
	CrystalComboBonus = 2.0

	AirBaseDamage = 2.0
	// AirBonusCards is how many bonus Air cards a single Air play queues for
	// the next turn boundary.
	AirBonusCards = 2

	EarthBaseDamage = 5.0

	HealBaseDamage = 8.0
)

// CardSpec describes one catalog entry for listing purposes. The special
// interactions (first-card bonus, combos, queued bonus cards) live in the
// engine's resolver; Rule carries the human-readable summary.
type CardSpec struct {
	Kind       CardKind `json:"kind"`
	BaseDamage float64  `json:"base_damage"`
	Rule       string   `json:"rule,omitempty"`
}

// Catalog lists every card kind in a stable presentation order.
var Catalog = []CardSpec{
	{Kind: CardFire, BaseDamage: FireBaseDamage, Rule: "bonus damage when played as the first card of a turn"},
	{Kind: CardIce, BaseDamage: IceBaseDamage, Rule: "doubled right after fire; nullified once earth has been played"},
	{Kind: CardAir, BaseDamage: AirBaseDamage, Rule: "queues two bonus air cards for the next turn boundary"},
	{Kind: CardEarth, BaseDamage: EarthBaseDamage, Rule: "scales with hand size and turn counter"},
	{Kind: CardCrystal, BaseDamage: CrystalBaseDamage, Rule: "scales with cards played and crystal power"},
	{Kind: CardHeal, BaseDamage: HealBaseDamage, Rule: "heals a full-health enemy roster instead of damaging it"},
}

// ValidCardKind reports whether k names a catalog entry.
func ValidCardKind(k CardKind) bool {
	switch k {
	case CardFire, CardIce, CardAir, CardEarth, CardCrystal, CardHeal:
		return true
	}
	return false
}

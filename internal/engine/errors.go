package engine

import "errors"

// Rejected-action errors. None of these leave the session in an
// inconsistent state: a rejected action changes nothing.
var (
	ErrNotPlayerTurn      = errors.New("not the player's turn")
	ErrInvalidCardIndex   = errors.New("card index out of range")
	ErrEncounterConcluded = errors.New("encounter already concluded")
)

// Construction errors, surfaced by NewSession and never mid-encounter.
var (
	ErrNoHostiles      = errors.New("encounter has no hostiles")
	ErrBadPlayerHealth = errors.New("player max health must be positive")
	ErrBadHostile      = errors.New("hostile max health must be positive")
	ErrUnknownCardKind = errors.New("unknown card kind in initial hand")
)

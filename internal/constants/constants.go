package constants

// Centralized constants for env keys, routes and shared strings.
const (
	// Environment variable keys
	EnvConfigPath = "SPIRITED_CONFIG"
	EnvDBPath     = "SPIRITED_DB"
	EnvListenAddr = "SPIRITED_ADDR"
	EnvDebug      = "SPIRITED_DEBUG"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Defaults when the environment leaves them unset
	DefaultConfigPath = "spirited_config.json"
	DefaultDBPath     = "spirited.db"
	DefaultListenAddr = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteChapters       = "/chapters"
	RouteCards          = "/cards"
	RouteSessions       = "/sessions"
	RouteSessionByCode  = "/sessions/:code"
	RouteSessionPlay    = "/sessions/:code/play"
	RouteSessionEndTurn = "/sessions/:code/end-turn"
	RouteSessionAdvance = "/sessions/:code/advance"
	RouteSessionEvents  = "/sessions/:code/events"
	RouteVersion        = "/version"
	RouteHealth         = "/healthz"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidJoinCode   = "Invalid join code"
	ErrSessionNotFound   = "Session not found"
	ErrChapterNotFound   = "Chapter not found"
	ErrSessionClosed     = "Session is closed"
	ErrNotPlayerTurn     = "It is not the player's turn"
	ErrInvalidCardIndex  = "Card index out of range"
	ErrEncounterOver     = "Encounter already concluded"
	ErrEncounterOngoing  = "Encounter still in progress"
	ErrNothingAfterFinal = "No chapter follows the final one"
	ErrFailedCreate      = "Failed to create session"
	ErrFailedUpdate      = "Failed to update session"
	ErrFailedFetch       = "Failed to fetch session"
)

// Logging field names
const (
	LogFieldSessionUUID = "session_uuid"
	LogFieldJoinCode    = "join_code"
	LogFieldChapter     = "chapter"
	LogFieldCard        = "card"
	LogFieldOutcome     = "outcome"
	LogFieldAddr        = "addr"
	LogFieldCount       = "count"
)

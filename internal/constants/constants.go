package constants

// Centralized constants for env keys, routes and shared strings.
const (
	// Environment variable keys
	EnvConfigPath = "ANIMECLASH_CONFIG"
	EnvDBPath     = "ANIMECLASH_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix       = "/api"
	RouteCharacters      = "/characters"
	RouteCharacterByName = "/characterByName"
	RouteMoves           = "/moves"
	RouteMoveByName      = "/moveByName"
	RouteRooms           = "/rooms"
	RouteRoomsJoin       = "/rooms/join"
	RouteRoomByCode      = "/rooms/:roomCode"
	RouteRoomLeave       = "/rooms/:roomCode/leave"
	RouteRoomTeams       = "/rooms/:roomCode/teams"
	RouteRoomStart       = "/rooms/:roomCode/start"
	RouteRoomSelect      = "/rooms/:roomCode/select"
	RouteRoomTargets     = "/rooms/:roomCode/targets"
	RouteRoomConfirm     = "/rooms/:roomCode/confirm"
	RouteRoomSwap        = "/rooms/:roomCode/swap"
	RouteRoomState       = "/rooms/:roomCode/state"
	RouteRelay           = "/relay/:roomCode"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrInvalidRoomCode    = "Invalid room code"
	ErrRoomNotFound       = "Room not found"
	ErrRoomFull           = "Room is full"
	ErrFailedCreateRoom   = "Failed to create room"
	ErrFailedUpdateRoom   = "Failed to update room"
	ErrFailedFetchCatalog = "Failed to fetch catalog"
	ErrNamesParamRequired = "names query parameter is required (e.g. names=a or names=a,b)"
	ErrBattleNotStarted   = "Battle has not started"
	ErrBattleAlreadyLive  = "Battle already in progress"
	ErrTeamsNotReady      = "Both teams must be stored before starting"
	ErrNotYourTurn        = "Not this player's selection turn"
	ErrFailedStoreMove    = "Failed to store move selection"
	ErrFailedResolveTurn  = "Failed to confirm turn"
)

// Logging field names
const (
	LogFieldRoomCode  = "room_code"
	LogFieldPlayer    = "player"
	LogFieldRound     = "round"
	LogFieldDeckID    = "deck_id"
	LogFieldMove      = "move"
	LogFieldRole      = "role"
	LogFieldCharacter = "character"
	LogFieldAddr      = "addr"
)

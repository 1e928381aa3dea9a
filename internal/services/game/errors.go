package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveRound    GameError = "no active round"
	ErrStaleRound       GameError = "board belongs to a previous round"
	ErrNoResult         GameError = "no won round to read aloud"
	ErrUnknownLanguage  GameError = "unknown language"
	ErrEmptyProfileID   GameError = "profile ID cannot be empty"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilProfileRepo   GameError = "profile repository cannot be nil"
	ErrNilMessaging     GameError = "messaging service cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)

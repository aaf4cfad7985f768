package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound      MatchError = "match not found"
	ErrMatchAlreadyExists MatchError = "a match is already running in this channel"
	ErrSamePlayer         MatchError = "you cannot play against yourself"
	ErrNotYourTurn        MatchError = "it is not your turn"
	ErrPlayerNotInMatch   MatchError = "player not in match"
	ErrInvalidInput       MatchError = "invalid input"
	ErrNilConfig          MatchError = "config cannot be nil"
	ErrNilMatchRepo       MatchError = "match repository cannot be nil"
	ErrNilPlayerRepo      MatchError = "player repository cannot be nil"
	ErrNilScoreLedgerRepo MatchError = "score ledger repository cannot be nil"
	ErrNilDiceRoller      MatchError = "dice roller cannot be nil"
	ErrNilClock           MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator   MatchError = "UUID generator cannot be nil"
)

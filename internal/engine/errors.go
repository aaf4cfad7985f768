package engine

// EngineError is returned when a turn action is not allowed in the current state
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilMatch            EngineError = "match cannot be nil"
	ErrNilRoller           EngineError = "dice roller cannot be nil"
	ErrNilConfig           EngineError = "config cannot be nil"
	ErrSamePlayer          EngineError = "a match needs two different players"
	ErrInvalidRollBudget   EngineError = "roll budget cannot be negative"
	ErrGameOver            EngineError = "game is over"
	ErrRollNotAllowed      EngineError = "rolling is not allowed right now"
	ErrNoRerollsLeft       EngineError = "no rerolls left this turn"
	ErrRollBudgetExhausted EngineError = "player has no rolls left"
	ErrInvalidDieValue     EngineError = "dice roller returned a value outside 1..6"
	ErrDiceNotRolled       EngineError = "dice have not been rolled this turn"
	ErrInvalidDieIndex     EngineError = "die index must be between 0 and 4"
	ErrInvalidCategory     EngineError = "invalid category"
	ErrCategoryFilled      EngineError = "category already scored"
)

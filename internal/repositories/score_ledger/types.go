package score_ledger

import "github.com/KirkDiggler/dicegame/internal/models"

// AddRecordInput contains parameters for adding a score record
type AddRecordInput struct {
	Record *models.ScoreRecord
}

// GetRecordsForMatchInput contains parameters for reading a match's ledger
type GetRecordsForMatchInput struct {
	MatchID string
}

// GetRecordsForMatchOutput contains a match's ledger, oldest first
type GetRecordsForMatchOutput struct {
	Records []*models.ScoreRecord
}

// DeleteRecordsForMatchInput contains parameters for deleting a match's ledger
type DeleteRecordsForMatchInput struct {
	MatchID string
}

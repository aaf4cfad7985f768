package score_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicegame/internal/repositories/score_ledger Repository

import (
	"context"
)

// Repository defines the interface for the per-match score log
type Repository interface {
	// AddRecord appends a scored category to a match's ledger
	AddRecord(ctx context.Context, input *AddRecordInput) error

	// GetRecordsForMatch returns a match's ledger in scoring order
	GetRecordsForMatch(ctx context.Context, input *GetRecordsForMatchInput) (*GetRecordsForMatchOutput, error)

	// DeleteRecordsForMatch removes a match's ledger
	DeleteRecordsForMatch(ctx context.Context, input *DeleteRecordsForMatchInput) error
}

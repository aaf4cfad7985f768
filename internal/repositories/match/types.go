package match

import "github.com/KirkDiggler/dicegame/internal/models"

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type DeleteMatchInput struct {
	MatchID string
}

type GetActiveMatchesInput struct {
}

type GetActiveMatchesOutput struct {
	Matches []*models.Match
}

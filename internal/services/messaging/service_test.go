package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service {
	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	return svc
}

func TestClassifyRoll(t *testing.T) {
	testCases := []struct {
		name string
		dice [5]int
		want RollKind
	}{
		{"yahtzee", [5]int{4, 4, 4, 4, 4}, RollKindYahtzee},
		{"large straight", [5]int{2, 3, 4, 5, 6}, RollKindLargeStraight},
		{"small straight", [5]int{1, 2, 3, 4, 6}, RollKindSmallStraight},
		{"full house", [5]int{3, 3, 5, 5, 5}, RollKindFullHouse},
		{"four of a kind", [5]int{2, 2, 2, 2, 5}, RollKindFourOfAKind},
		{"plain", [5]int{1, 1, 3, 5, 6}, RollKindPlain},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyRoll(tc.dice))
		})
	}
}

func TestGetRollResultMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetRollResultMessage(context.Background(), &GetRollResultMessageInput{
		PlayerName: "Alice",
		Dice:       [5]int{6, 6, 6, 6, 6},
		RollCount:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, RollKindYahtzee, out.Kind)
	assert.Equal(t, ToneCelebration, out.Tone)
	assert.Contains(t, rollTitles[RollKindYahtzee], out.Title)
	assert.Contains(t, out.Message, "Alice")

	out, err = svc.GetRollResultMessage(context.Background(), &GetRollResultMessageInput{
		PlayerName: "Bob",
		Dice:       [5]int{1, 1, 3, 5, 6},
		RollCount:  3,
		MustScore:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, ToneNeutral, out.Tone)
	assert.Contains(t, out.Message, "Bob")

	noted := false
	for _, note := range lastRollNotes {
		if strings.HasSuffix(out.Message, note) {
			noted = true
		}
	}
	assert.True(t, noted, "last roll note is appended: %q", out.Message)

	_, err = svc.GetRollResultMessage(context.Background(), nil)
	assert.Error(t, err)
}

func TestGetScoreMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetScoreMessage(context.Background(), &GetScoreMessageInput{
		PlayerName:     "Alice",
		Category:       models.CategoryYahtzee,
		Score:          0,
		NextPlayerName: "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, ToneFunny, out.Tone)
	assert.Contains(t, out.Message, "Alice")
	assert.Contains(t, out.Message, "Yahtzee")
	assert.Contains(t, out.Message, "Bob")

	out, err = svc.GetScoreMessage(context.Background(), &GetScoreMessageInput{
		PlayerName: "Alice",
		Category:   models.CategoryLargeStraight,
		Score:      40,
	})
	require.NoError(t, err)
	assert.Equal(t, ToneCelebration, out.Tone)
	assert.Contains(t, out.Message, "40")
	assert.Contains(t, out.Message, "Large Straight")

	out, err = svc.GetScoreMessage(context.Background(), &GetScoreMessageInput{
		PlayerName: "Alice",
		Category:   models.CategoryThreeOfAKind,
		Score:      17,
	})
	require.NoError(t, err)
	assert.Equal(t, ToneNeutral, out.Tone)
	assert.Contains(t, out.Message, "3x")
	assert.NotContains(t, out.Message, "%!")
}

func TestGetGameOverMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetGameOverMessage(context.Background(), &GetGameOverMessageInput{
		PlayerNames: [2]string{"Alice", "Bob"},
		FinalScores: [2]int{199, 199},
		Tie:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, "No one, it's a tie!", out.Title)
	assert.Contains(t, out.Message, "Alice: 199, Bob: 199")

	out, err = svc.GetGameOverMessage(context.Background(), &GetGameOverMessageInput{
		PlayerNames: [2]string{"Alice", "Bob"},
		FinalScores: [2]int{145, 115},
		WinnerName:  "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice wins!", out.Title)
	assert.Contains(t, out.Message, "Alice: 145, Bob: 115")
}

func TestGetErrorMessage(t *testing.T) {
	svc := newTestService(t)

	testCases := []struct {
		name     string
		err      error
		messages []string
	}{
		{"not your turn", matchService.ErrNotYourTurn, errorMessages[matchService.ErrNotYourTurn]},
		{"wrapped", fmt.Errorf("roll: %w", engine.ErrNoRerollsLeft), errorMessages[engine.ErrNoRerollsLeft]},
		{"category filled", engine.ErrCategoryFilled, errorMessages[engine.ErrCategoryFilled]},
		{"unknown", errors.New("redis: connection refused"), defaultErrorMessages},
		{"nil", nil, defaultErrorMessages},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{Err: tc.err})
			require.NoError(t, err)
			assert.Contains(t, tc.messages, out.Message)
			assert.Equal(t, ToneFunny, out.Tone)
		})
	}
}

func TestErrorMessagesCoverErrorOrder(t *testing.T) {
	for _, known := range errorOrder {
		assert.NotEmpty(t, errorMessages[known], "no messages for %v", known)
	}
	assert.Len(t, errorMessages, len(errorOrder))
}

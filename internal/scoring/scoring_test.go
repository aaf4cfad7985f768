package scoring

import (
	"testing"

	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dice = [models.DiceCount]int

func TestCalculateScore(t *testing.T) {
	testCases := []struct {
		name     string
		category models.Category
		dice     dice
		expected int
	}{
		{"ones counts only ones", models.CategoryOnes, dice{1, 1, 2, 3, 1}, 3},
		{"ones with none", models.CategoryOnes, dice{2, 3, 4, 5, 6}, 0},
		{"twos", models.CategoryTwos, dice{2, 2, 2, 5, 6}, 6},
		{"threes", models.CategoryThrees, dice{3, 1, 3, 1, 3}, 9},
		{"fours", models.CategoryFours, dice{4, 4, 4, 4, 1}, 16},
		{"fives", models.CategoryFives, dice{5, 1, 2, 3, 4}, 5},
		{"sixes", models.CategorySixes, dice{6, 6, 6, 6, 6}, 30},

		{"three of a kind sums all dice", models.CategoryThreeOfAKind, dice{3, 3, 3, 5, 6}, 20},
		{"three of a kind accepts four", models.CategoryThreeOfAKind, dice{2, 2, 2, 2, 6}, 14},
		{"three of a kind misses with pairs", models.CategoryThreeOfAKind, dice{2, 2, 3, 3, 6}, 0},
		{"four of a kind sums all dice", models.CategoryFourOfAKind, dice{5, 5, 5, 5, 1}, 21},
		{"four of a kind accepts five", models.CategoryFourOfAKind, dice{4, 4, 4, 4, 4}, 20},
		{"four of a kind misses with three", models.CategoryFourOfAKind, dice{5, 5, 5, 1, 1}, 0},

		{"full house three and two", models.CategoryFullHouse, dice{2, 2, 3, 3, 3}, 25},
		{"full house rejects five of a kind", models.CategoryFullHouse, dice{4, 4, 4, 4, 4}, 0},
		{"full house rejects four and one", models.CategoryFullHouse, dice{4, 4, 4, 4, 1}, 0},
		{"full house rejects three and singles", models.CategoryFullHouse, dice{4, 4, 4, 2, 1}, 0},
		{"full house rejects two pairs", models.CategoryFullHouse, dice{4, 4, 2, 2, 1}, 0},
		{"full house rejects all distinct", models.CategoryFullHouse, dice{1, 2, 3, 4, 6}, 0},

		{"small straight with duplicate", models.CategorySmallStraight, dice{1, 2, 3, 4, 4}, 30},
		{"small straight unordered", models.CategorySmallStraight, dice{6, 4, 3, 5, 1}, 30},
		{"small straight from large", models.CategorySmallStraight, dice{1, 2, 3, 4, 5}, 30},
		{"small straight broken run", models.CategorySmallStraight, dice{1, 2, 4, 5, 6}, 0},
		{"large straight low", models.CategoryLargeStraight, dice{1, 2, 3, 4, 5}, 40},
		{"large straight high unordered", models.CategoryLargeStraight, dice{6, 2, 5, 3, 4}, 40},
		{"large straight rejects four run", models.CategoryLargeStraight, dice{1, 2, 3, 4, 4}, 0},
		{"straights do not wrap", models.CategorySmallStraight, dice{5, 6, 1, 2, 2}, 0},

		{"yahtzee", models.CategoryYahtzee, dice{6, 6, 6, 6, 6}, 50},
		{"yahtzee misses with four", models.CategoryYahtzee, dice{6, 6, 6, 6, 5}, 0},

		{"chance sums unconditionally", models.CategoryChance, dice{1, 3, 4, 6, 6}, 20},

		{"invalid category scores zero", models.Category(99), dice{1, 2, 3, 4, 5}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateScore(tc.category, tc.dice))
		})
	}
}

func TestCalculateScore_AllOnes(t *testing.T) {
	roll := dice{1, 1, 1, 1, 1}

	assert.Equal(t, 5, CalculateScore(models.CategoryOnes, roll))
	assert.Equal(t, 50, CalculateScore(models.CategoryYahtzee, roll))
	assert.Equal(t, 0, CalculateScore(models.CategoryFullHouse, roll))
	assert.Equal(t, 0, CalculateScore(models.CategorySmallStraight, roll))
	assert.Equal(t, 0, CalculateScore(models.CategoryLargeStraight, roll))
}

func TestCalculateScore_TotalOverAllRolls(t *testing.T) {
	// Every one of the 6^5 rolls must score deterministically in every category.
	var roll dice
	var walk func(i int)
	walk = func(i int) {
		if i == models.DiceCount {
			for _, c := range models.AllCategories() {
				first := CalculateScore(c, roll)
				require.Equal(t, first, CalculateScore(c, roll))
				require.GreaterOrEqual(t, first, 0)
				require.LessOrEqual(t, first, YahtzeeScore)
			}
			return
		}
		for face := 1; face <= 6; face++ {
			roll[i] = face
			walk(i + 1)
		}
	}
	walk(0)
}

func TestHasStraight(t *testing.T) {
	testCases := []struct {
		name     string
		dice     []int
		length   int
		expected bool
	}{
		{"run of four", []int{1, 2, 3, 4, 6}, 4, true},
		{"run of four is not five", []int{1, 2, 3, 4, 6}, 5, false},
		{"duplicates ignored", []int{3, 3, 4, 5, 6}, 4, true},
		{"full run", []int{2, 3, 4, 5, 6}, 5, true},
		{"run resets after gap", []int{1, 2, 4, 5, 6}, 4, false},
		{"all same", []int{1, 1, 1, 1, 1}, 2, false},
		{"single value meets length one", []int{4}, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HasStraight(tc.dice, tc.length))
		})
	}
}

func TestCalculatePotentialScores(t *testing.T) {
	player := &models.Player{Name: "Player 1"}
	require.NoError(t, player.ScoreCard.Fill(models.CategoryYahtzee, 0))
	require.NoError(t, player.ScoreCard.Fill(models.CategoryOnes, 3))
	before := player.ScoreCard

	scores := CalculatePotentialScores(player, dice{6, 6, 6, 6, 6})

	assert.Len(t, scores, models.NumCategories)
	assert.Equal(t, 0, scores[models.CategoryYahtzee], "filled slot keeps its stored value")
	assert.Equal(t, 3, scores[models.CategoryOnes])
	assert.Equal(t, 30, scores[models.CategorySixes])
	assert.Equal(t, 30, scores[models.CategoryChance])
	assert.Equal(t, before, player.ScoreCard, "scorecard must not change")
	assert.Equal(t, 2, player.ScoreCard.FilledCount())
}

func TestTotals(t *testing.T) {
	var card models.ScoreCard
	require.NoError(t, card.Fill(models.CategoryOnes, 3))
	require.NoError(t, card.Fill(models.CategoryTwos, 6))
	require.NoError(t, card.Fill(models.CategoryThrees, 9))
	require.NoError(t, card.Fill(models.CategoryFours, 12))
	require.NoError(t, card.Fill(models.CategoryFives, 15))
	require.NoError(t, card.Fill(models.CategorySixes, 17))
	require.NoError(t, card.Fill(models.CategoryChance, 20))

	assert.Equal(t, 62, UpperSectionSum(&card))
	assert.Equal(t, 0, Bonus(&card))
	assert.Equal(t, 82, TotalScore(&card))

	card = models.ScoreCard{}
	require.NoError(t, card.Fill(models.CategoryFours, 16))
	require.NoError(t, card.Fill(models.CategoryFives, 20))
	require.NoError(t, card.Fill(models.CategorySixes, 30))
	require.NoError(t, card.Fill(models.CategoryYahtzee, 50))

	assert.Equal(t, 66, UpperSectionSum(&card))
	assert.Equal(t, UpperBonus, Bonus(&card))
	assert.Equal(t, 116, SumFilled(&card))
	assert.Equal(t, 151, TotalScore(&card))
}

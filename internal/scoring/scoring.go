// Package scoring computes category scores from a set of five dice.
//
// Every function here is pure: nothing reads or writes match state, and the
// scorecard passed to CalculatePotentialScores is never modified.
package scoring

import (
	"sort"

	"github.com/KirkDiggler/dicegame/internal/models"
)

const (
	// UpperBonusThreshold is the upper-section sum that earns the bonus
	UpperBonusThreshold = 63

	// UpperBonus is added to the total when the threshold is reached
	UpperBonus = 35

	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50

	smallStraightLength = 4
	largeStraightLength = 5
)

// CalculateScore returns the score the dice would earn in a category.
// It is defined for every category and any five values in 1..6.
func CalculateScore(category models.Category, dice [models.DiceCount]int) int {
	counts := faceCounts(dice)

	switch category {
	case models.CategoryOnes, models.CategoryTwos, models.CategoryThrees,
		models.CategoryFours, models.CategoryFives, models.CategorySixes:
		face := category.Face()
		return counts[face] * face
	case models.CategoryThreeOfAKind:
		if anyCountAtLeast(counts, 3) {
			return sum(dice)
		}
		return 0
	case models.CategoryFourOfAKind:
		if anyCountAtLeast(counts, 4) {
			return sum(dice)
		}
		return 0
	case models.CategoryFullHouse:
		// Counts must contain both a 3 and a 2, so five of a kind does not qualify.
		if hasCount(counts, 3) && hasCount(counts, 2) {
			return FullHouseScore
		}
		return 0
	case models.CategorySmallStraight:
		if HasStraight(dice[:], smallStraightLength) {
			return SmallStraightScore
		}
		return 0
	case models.CategoryLargeStraight:
		if HasStraight(dice[:], largeStraightLength) {
			return LargeStraightScore
		}
		return 0
	case models.CategoryYahtzee:
		if hasCount(counts, models.DiceCount) {
			return YahtzeeScore
		}
		return 0
	case models.CategoryChance:
		return sum(dice)
	default:
		return 0
	}
}

// HasStraight reports whether the distinct values contain a run of consecutive
// integers at least length long. There is no wraparound.
func HasStraight(dice []int, length int) bool {
	seen := make(map[int]struct{}, len(dice))
	unique := make([]int, 0, len(dice))
	for _, d := range dice {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	sort.Ints(unique)

	longest, current := 1, 1
	for i := 1; i < len(unique); i++ {
		if unique[i] == unique[i-1]+1 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}

	return longest >= length
}

// CalculatePotentialScores returns, for every category, the stored score if the
// player has filled it and otherwise the score the dice would earn there.
func CalculatePotentialScores(player *models.Player, dice [models.DiceCount]int) map[models.Category]int {
	scores := make(map[models.Category]int, models.NumCategories)
	for _, c := range models.AllCategories() {
		if player != nil {
			if v, ok := player.ScoreCard.Get(c); ok {
				scores[c] = v
				continue
			}
		}
		scores[c] = CalculateScore(c, dice)
	}
	return scores
}

// UpperSectionSum adds the filled Ones through Sixes
func UpperSectionSum(card *models.ScoreCard) int {
	total := 0
	for _, c := range models.UpperCategories() {
		if v, ok := card.Get(c); ok {
			total += v
		}
	}
	return total
}

// Bonus returns the upper-section bonus earned by a scorecard
func Bonus(card *models.ScoreCard) int {
	if UpperSectionSum(card) >= UpperBonusThreshold {
		return UpperBonus
	}
	return 0
}

// SumFilled adds every filled category without the bonus
func SumFilled(card *models.ScoreCard) int {
	total := 0
	for _, c := range models.AllCategories() {
		if v, ok := card.Get(c); ok {
			total += v
		}
	}
	return total
}

// TotalScore is the sum of filled categories plus the upper bonus
func TotalScore(card *models.ScoreCard) int {
	return SumFilled(card) + Bonus(card)
}

func faceCounts(dice [models.DiceCount]int) map[int]int {
	counts := make(map[int]int, models.DiceCount)
	for _, d := range dice {
		counts[d]++
	}
	return counts
}

func anyCountAtLeast(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c >= n {
			return true
		}
	}
	return false
}

func hasCount(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

func sum(dice [models.DiceCount]int) int {
	total := 0
	for _, d := range dice {
		total += d
	}
	return total
}

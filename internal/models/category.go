package models

import "fmt"

// Category is one of the 13 fixed scoring slots on a scorecard
type Category int

const (
	CategoryOnes Category = iota
	CategoryTwos
	CategoryThrees
	CategoryFours
	CategoryFives
	CategorySixes
	CategoryThreeOfAKind
	CategoryFourOfAKind
	CategoryFullHouse
	CategorySmallStraight
	CategoryLargeStraight
	CategoryYahtzee
	CategoryChance
)

// NumCategories is the number of scoring categories on a scorecard
const NumCategories = 13

var categoryKeys = [NumCategories]string{
	"ones",
	"twos",
	"threes",
	"fours",
	"fives",
	"sixes",
	"three_of_a_kind",
	"four_of_a_kind",
	"full_house",
	"small_straight",
	"large_straight",
	"yahtzee",
	"chance",
}

var categoryDisplayNames = [NumCategories]string{
	"Ones",
	"Twos",
	"Threes",
	"Fours",
	"Fives",
	"Sixes",
	"3x",
	"4x",
	"Full House",
	"Small Straight",
	"Large Straight",
	"Yahtzee",
	"Chance",
}

// AllCategories returns every category in scorecard order
func AllCategories() []Category {
	categories := make([]Category, NumCategories)
	for i := range categories {
		categories[i] = Category(i)
	}
	return categories
}

// UpperCategories returns Ones through Sixes
func UpperCategories() []Category {
	return []Category{
		CategoryOnes,
		CategoryTwos,
		CategoryThrees,
		CategoryFours,
		CategoryFives,
		CategorySixes,
	}
}

// IsValid reports whether c is one of the 13 categories
func (c Category) IsValid() bool {
	return c >= CategoryOnes && c <= CategoryChance
}

// IsUpper reports whether c belongs to the upper section
func (c Category) IsUpper() bool {
	return c >= CategoryOnes && c <= CategorySixes
}

// Face returns the die face counted by an upper-section category, or 0
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c) + 1
}

// Key returns the stable snake_case identifier of the category
func (c Category) Key() string {
	if !c.IsValid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryKeys[c]
}

// DisplayName returns the label shown on the scorecard
func (c Category) DisplayName() string {
	if !c.IsValid() {
		return c.Key()
	}
	return categoryDisplayNames[c]
}

func (c Category) String() string {
	return c.Key()
}

// ParseCategory resolves a category from its key
func ParseCategory(key string) (Category, error) {
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", key)
}

// MarshalText encodes the category as its key
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText decodes a category key
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

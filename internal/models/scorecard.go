package models

import (
	"encoding/json"
	"errors"
)

// ErrSlotFilled is returned when a score is written to a slot that already holds one
var ErrSlotFilled = errors.New("category already scored")

// ErrUnknownCategory is returned for category values outside the scorecard
var ErrUnknownCategory = errors.New("unknown category")

// Slot holds the score for a single category
type Slot struct {
	// Filled is false until a score has been assigned
	Filled bool

	// Value is only meaningful when Filled is true
	Value int
}

// ScoreCard maps every category to an optional score
type ScoreCard [NumCategories]Slot

// Get returns the score for a category and whether it has been filled
func (s *ScoreCard) Get(c Category) (int, bool) {
	if !c.IsValid() {
		return 0, false
	}
	slot := s[c]
	return slot.Value, slot.Filled
}

// IsFilled reports whether a category has a score
func (s *ScoreCard) IsFilled(c Category) bool {
	_, filled := s.Get(c)
	return filled
}

// Fill assigns a score to an unfilled category. A filled slot never changes.
func (s *ScoreCard) Fill(c Category, value int) error {
	if !c.IsValid() {
		return ErrUnknownCategory
	}
	if s[c].Filled {
		return ErrSlotFilled
	}
	s[c] = Slot{Filled: true, Value: value}
	return nil
}

// FilledCount returns the number of scored categories
func (s *ScoreCard) FilledCount() int {
	count := 0
	for _, slot := range s {
		if slot.Filled {
			count++
		}
	}
	return count
}

// IsComplete reports whether all 13 categories have been scored
func (s *ScoreCard) IsComplete() bool {
	return s.FilledCount() == NumCategories
}

// Unfilled returns the categories still open, in scorecard order
func (s *ScoreCard) Unfilled() []Category {
	open := make([]Category, 0, NumCategories)
	for i, slot := range s {
		if !slot.Filled {
			open = append(open, Category(i))
		}
	}
	return open
}

// MarshalJSON encodes only the filled slots, keyed by category
func (s ScoreCard) MarshalJSON() ([]byte, error) {
	filled := make(map[Category]int, NumCategories)
	for i, slot := range s {
		if slot.Filled {
			filled[Category(i)] = slot.Value
		}
	}
	return json.Marshal(filled)
}

// UnmarshalJSON decodes the map written by MarshalJSON
func (s *ScoreCard) UnmarshalJSON(data []byte) error {
	var filled map[Category]int
	if err := json.Unmarshal(data, &filled); err != nil {
		return err
	}

	*s = ScoreCard{}
	for c, v := range filled {
		if err := s.Fill(c, v); err != nil {
			return err
		}
	}
	return nil
}

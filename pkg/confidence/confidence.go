// Package confidence turns exclusion and consistent-marker counts into
// verdicts. Classify, Conclude and Tolerate are separate schemes with their
// own thresholds and are never combined.
package confidence

import "fmt"

type Category int

const (
	Low Category = iota
	Moderate
	High
	VeryHigh
)

var categoryNames = [...]string{
	Low:      "LOW",
	Moderate: "MODERATE",
	High:     "HIGH",
	VeryHigh: "VERY_HIGH",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Rule is one row of the classification table.
type Rule struct {
	Category      Category
	MaxExclusions int
	MinConsistent int
}

// Rules in descending strictness; the first match wins.
var Rules = []Rule{
	{VeryHigh, 0, 20},
	{High, 1, 15},
	{Moderate, 2, 10},
}

// Classify maps exclusion count e and consistent-marker count c to a
// category. E=1, C=25 is HIGH: the VERY_HIGH rule already fails on e.
func Classify(e, c int) Category {
	for _, rule := range Rules {
		if e <= rule.MaxExclusions && c >= rule.MinConsistent {
			return rule.Category
		}
	}
	return Low
}

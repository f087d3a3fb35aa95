package confidence

import "fmt"

// Conclusion is the parentage statement printed under the counts.
type Conclusion int

const (
	Inconclusive Conclusion = iota
	Confirmed
	Likely
	Excluded
)

var conclusionNames = [...]string{
	Inconclusive: "INCONCLUSIVE",
	Confirmed:    "PARENTAGE CONFIRMED",
	Likely:       "PARENTAGE LIKELY",
	Excluded:     "PARENTAGE EXCLUDED",
}

func (c Conclusion) String() string {
	if c < 0 || int(c) >= len(conclusionNames) {
		return fmt.Sprintf("Conclusion(%d)", int(c))
	}
	return conclusionNames[c]
}

func (c Conclusion) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func Conclude(e, c int) Conclusion {
	switch {
	case e == 0 && c >= 15:
		return Confirmed
	case e <= 2 && c >= 10:
		return Likely
	case e > c:
		return Excluded
	default:
		return Inconclusive
	}
}

// Explain renders the one-line justification of a conclusion.
func Explain(e, c, tested int) string {
	switch Conclude(e, c) {
	case Confirmed:
		return fmt.Sprintf("All %d tested markers support the proposed parentage.", c)
	case Likely:
		return fmt.Sprintf("Only %d exclusions found among %d markers.", e, tested)
	case Excluded:
		return fmt.Sprintf("Too many exclusions (%d) relative to consistent markers (%d).", e, c)
	default:
		return "Results are ambiguous. Additional testing may be needed."
	}
}

// Tolerance is the advisory reading of an exclusion count alone:
// 0-1 likely, 2-3 questionable, 4 or more excluded.
type Tolerance int

const (
	ToleranceLikely Tolerance = iota
	ToleranceQuestionable
	ToleranceExcluded
)

var toleranceNames = [...]string{
	ToleranceLikely:       "LIKELY",
	ToleranceQuestionable: "QUESTIONABLE",
	ToleranceExcluded:     "EXCLUDED",
}

func (t Tolerance) String() string {
	if t < 0 || int(t) >= len(toleranceNames) {
		return fmt.Sprintf("Tolerance(%d)", int(t))
	}
	return toleranceNames[t]
}

func (t Tolerance) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func Tolerate(e int) Tolerance {
	switch {
	case e <= 1:
		return ToleranceLikely
	case e <= 3:
		return ToleranceQuestionable
	default:
		return ToleranceExcluded
	}
}

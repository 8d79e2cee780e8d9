package summary

import "fmt"

// Band is a performance tier. The same thresholds classify single scores and
// the session average.
type Band int

const (
	Excellent Band = iota
	Good
	Average
	NeedsImprovement
)

// Bands lists every tier in display order.
var Bands = []Band{Excellent, Good, Average, NeedsImprovement}

// BandFor classifies a score. Lower bounds are inclusive.
func BandFor(score float64) Band {
	switch {
	case score >= 8:
		return Excellent
	case score >= 6:
		return Good
	case score >= 4:
		return Average
	default:
		return NeedsImprovement
	}
}

func (b Band) String() string {
	switch b {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Average:
		return "Average"
	case NeedsImprovement:
		return "Needs Improvement"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Label is the name with its score range, as shown on the distribution chart.
func (b Band) Label() string {
	switch b {
	case Excellent:
		return "Excellent (8-10)"
	case Good:
		return "Good (6-7.9)"
	case Average:
		return "Average (4-5.9)"
	case NeedsImprovement:
		return "Needs Improvement (0-3.9)"
	default:
		return b.String()
	}
}

func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

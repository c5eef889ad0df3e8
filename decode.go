package qbridge

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Decision is the pattern-recognition outcome: whether the pattern was
// seen at all, and in how many of the shots.
type Decision struct {
	PatternIdentified bool
	Confidence        float64
}

// Movement is the integer encoding of one measured bit-pattern, qubit
// 0 in the least significant bit.
type Movement uint64

// Histogram counts how often each outcome appeared across the shots.
type Histogram map[Movement]int

/*
DecodePattern reduces a measurement table to a pattern decision. The
pattern flag is the qubit-0 bit of the first shot; the confidence
score is the mean of the qubit-0 bits over all shots, which by
construction lies in [0,1].
*/
func DecodePattern(table MeasurementTable, label string) (Decision, error) {
	shots, ok := table[label]
	if !ok || len(shots) == 0 {
		return Decision{}, &DecodeError{Reason: fmt.Sprintf("no shots recorded for label %q", label)}
	}

	channel := make([]float64, len(shots))
	for i, shot := range shots {
		if len(shot) == 0 {
			return Decision{}, &DecodeError{Reason: fmt.Sprintf("shot %d is zero-width", i)}
		}
		channel[i] = float64(shot[0])
	}

	return Decision{
		PatternIdentified: shots[0][0] == 1,
		Confidence:        stat.Mean(channel, nil),
	}, nil
}

/*
DecodeMovement picks the most frequent outcome across all shots and
returns it together with the full outcome histogram. Ties are broken
toward the smallest encoded outcome, so the selection never depends on
map iteration order.
*/
func DecodeMovement(table MeasurementTable, label string) (Movement, Histogram, error) {
	shots, ok := table[label]
	if !ok || len(shots) == 0 {
		return 0, nil, &DecodeError{Reason: fmt.Sprintf("no shots recorded for label %q", label)}
	}

	hist := make(Histogram)
	for _, shot := range shots {
		hist[shot.Encode()]++
	}

	first := true
	var best Movement
	for outcome, count := range hist {
		if first || count > hist[best] || (count == hist[best] && outcome < best) {
			best = outcome
			first = false
		}
	}

	return best, hist, nil
}

package space3d

import (
	"math"

	"golang.org/x/exp/constraints"
)

// TwoPi is a full turn.
const TwoPi = 2 * math.Pi

// ReduceAngle folds an angle into [-2π,2π] by removing whole turns.
// If keepSign is false, a negative result is shifted by 2π, landing in
// [0,2π]. Angles already within range are not touched.
func ReduceAngle[F constraints.Float](angle F, keepSign bool) F {
	a := float64(angle)
	reduced := angle
	if a > TwoPi {
		reduced = F(a - TwoPi*math.Floor(a/TwoPi))
	} else if a < -TwoPi {
		reduced = F(a + TwoPi*math.Floor(math.Abs(a)/TwoPi))
	}
	if !keepSign && reduced < 0 {
		reduced += F(TwoPi)
	}
	return reduced
}

// ReduceAngles applies ReduceAngle to every element of angles. The result
// is a new slice of the same length.
func ReduceAngles[F constraints.Float](angles []F, keepSign bool) []F {
	reduced := make([]F, len(angles))
	for i, a := range angles {
		reduced[i] = ReduceAngle(a, keepSign)
	}
	return reduced
}

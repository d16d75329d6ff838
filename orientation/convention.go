package orientation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownConvention indicates a convention name not present in a registry.
	ErrUnknownConvention = errors.New("unknown Euler angles convention")
	// ErrInvalidConvention indicates a malformed convention definition.
	ErrInvalidConvention = errors.New("invalid Euler angles convention")
)

// RangePolicy selects the numeric range of the first and third Euler angle.
type RangePolicy int

const (
	// Positive puts the first and third angle into [0,2π).
	Positive RangePolicy = iota
	// Centered puts the first and third angle into (-π,π].
	Centered
)

func (rp RangePolicy) String() string {
	switch rp {
	case Positive:
		return "positive"
	case Centered:
		return "centered"
	}
	return fmt.Sprintf("RangePolicy(%d)", int(rp))
}

// ParseRangePolicy parses "positive" or "centered".
func ParseRangePolicy(s string) (RangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return Positive, nil
	case "centered", "centred":
		return Centered, nil
	}
	return Positive, fmt.Errorf("%w: unknown range policy %q", ErrInvalidConvention, s)
}

// Convention is a named rule set for Euler angles: the sequence of
// (intrinsic) rotation axes and the range of the resulting angles.
type Convention struct {
	Name        string
	Axes        string // e.g., "ZXZ"
	Range       RangePolicy
	Description string
}

// Validate checks the axis sequence: three letters out of X, Y, Z, with no
// two consecutive axes equal.
func (c Convention) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConvention)
	}
	if len(c.Axes) != 3 {
		return fmt.Errorf("%w: %s: axis sequence %q must have 3 axes", ErrInvalidConvention, c.Name, c.Axes)
	}
	prev := -1
	for _, r := range strings.ToUpper(c.Axes) {
		i := strings.IndexRune("XYZ", r)
		if i < 0 {
			return fmt.Errorf("%w: %s: illegal axis %q", ErrInvalidConvention, c.Name, r)
		}
		if i == prev {
			return fmt.Errorf("%w: %s: consecutive axes must differ in %q", ErrInvalidConvention, c.Name, c.Axes)
		}
		prev = i
	}
	if c.Range != Positive && c.Range != Centered {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConvention, c.Name, c.Range)
	}
	return nil
}

// IsProper is a predicate: is this a proper Euler sequence (first axis
// equals last axis), as opposed to a Tait-Bryan sequence?
func (c Convention) IsProper() bool {
	i, _, k := c.indices()
	return i == k
}

// indices returns the axis sequence as indices 0..2. The convention is
// expected to be valid.
func (c Convention) indices() (int, int, int) {
	axes := strings.ToUpper(c.Axes)
	return strings.IndexByte("XYZ", axes[0]),
		strings.IndexByte("XYZ", axes[1]),
		strings.IndexByte("XYZ", axes[2])
}

func (c Convention) String() string {
	return fmt.Sprintf("%s (%s, %s)", c.Name, strings.ToUpper(c.Axes), c.Range)
}

// parity is +1 if (i,j,k) is a cyclic permutation of (0,1,2), and -1 otherwise.
func parity(i, j, k int) float64 {
	if (i+1)%3 == j && (j+1)%3 == k {
		return 1
	}
	return -1
}

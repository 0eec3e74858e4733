package metric

import (
	"errors"
	"fmt"
	"math"
)

// Inf is the sentinel cost of an unreachable cell or an impossible alignment.
const Inf int64 = math.MaxInt64

// maxSquarable is the largest |d| for which d*d still fits in int64.
const maxSquarable = 3037000499

// ErrUnknownMetric is returned by Parse for names outside the supported set.
var ErrUnknownMetric = errors.New("metric: unknown distance metric")

// Kind selects a pointwise cost function. The zero value is invalid.
type Kind int

const (
	// L1 is the absolute difference.
	L1 Kind = iota + 1

	// Euclidean is the squared difference.
	Euclidean
)

// Canonical names, as accepted by Parse and used in artifact file names.
const (
	NameL1        = "L1"
	NameEuclidean = "euclidean"
)

// Parse resolves a metric name. Matching is exact: "L1" or "euclidean".
func Parse(name string) (Kind, error) {
	switch name {
	case NameL1:
		return L1, nil
	case NameEuclidean:
		return Euclidean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k == L1 || k == Euclidean
}

// String returns the canonical name of k.
func (k Kind) String() string {
	switch k {
	case L1:
		return NameL1
	case Euclidean:
		return NameEuclidean
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cost returns the pointwise cost between a and b under k.
// An invalid kind yields Inf.
func (k Kind) Cost(a, b int64) int64 {
	d, ok := absDiff(a, b)
	if !ok {
		return Inf
	}
	switch k {
	case L1:
		return d
	case Euclidean:
		if d > maxSquarable {
			return Inf
		}

		return d * d
	default:
		return Inf
	}
}

// AddSat returns a+b for non-negative costs, clamped to Inf.
func AddSat(a, b int64) int64 {
	if a == Inf || b == Inf || a > Inf-b {
		return Inf
	}

	return a + b
}

// Sqrt converts an accumulated Euclidean DTW sum into a distance.
// Inf maps to +Inf.
func Sqrt(sum int64) float64 {
	if sum == Inf {
		return math.Inf(1)
	}

	return math.Sqrt(float64(sum))
}

// absDiff returns |a-b| and false when the difference overflows int64.
func absDiff(a, b int64) (int64, bool) {
	if a < b {
		a, b = b, a
	}
	d := a - b
	if d < 0 {
		return 0, false
	}

	return d, true
}

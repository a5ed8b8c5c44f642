package rangecut

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Range is the half-open interval [Start, End) over an ordered type.
//
// A Range with Start == End is empty. Ranges with Start > End can be built,
// but every operation that depends on the ordering of the bounds treats them
// as a precondition violation.
type Range[T constraints.Ordered] struct {
	Start T
	End   T
}

func RangeFrom[T constraints.Ordered](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// ParseRange parses the "start-end" form produced by String for unsigned
// offsets.
func ParseRange(s string) (Range[uint64], error) {
	var r Range[uint64]
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, errors.Errorf("no hyphen in range %q", s)
	}
	start, end := s[:h], s[h+1:]
	startOffset, err := strconv.ParseUint(start, 10, 64)
	if err != nil {
		return r, errors.Wrapf(err, "invalid start %q in range %q", start, s)
	}
	endOffset, err := strconv.ParseUint(end, 10, 64)
	if err != nil {
		return r, errors.Wrapf(err, "invalid end %q in range %q", end, s)
	}
	return RangeFrom(startOffset, endOffset), nil
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// IsValid reports whether r is well-formed (Start <= End).
func (r Range[T]) IsValid() bool {
	return r.Start <= r.End
}

func (r Range[T]) IsZero() bool {
	return r == Range[T]{}
}

func (r Range[T]) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether x lies in [Start, End).
func (r Range[T]) Contains(x T) bool {
	return r.Start <= x && x < r.End
}

// containsOrEndsAt only checks the upper bound; callers check the lower one.
func (r Range[T]) containsOrEndsAt(x T) bool {
	return x <= r.End
}

// Less orders ranges by Start, and the longer range first when the starts
// are equal.
func (r Range[T]) Less(other Range[T]) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return other.End < r.End
}

// Adjacent reports whether other starts exactly where r ends.
func (r Range[T]) Adjacent(other Range[T]) bool {
	return r.End == other.Start
}

// Overlaps reports whether r and other share at least one position.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.Start < other.End && other.Start < r.End
}

// EntirelyBefore returns whether r ends at or before the start of other.
func (r Range[T]) EntirelyBefore(other Range[T]) bool {
	return r.End <= other.Start
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range[T]) CoveredBy(other Range[T]) bool {
	return other.Start <= r.Start && r.End <= other.End
}

// InMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Range[T]) InMiddleOf(other Range[T]) bool {
	return other.Start < r.Start && r.End < other.End
}

// OverlapsStartOf returns whether r overlaps the start of other, but not all
// of other.
func (r Range[T]) OverlapsStartOf(other Range[T]) bool {
	return r.Start <= other.Start && other.Start < r.End && r.End < other.End
}

// OverlapsEndOf returns whether r overlaps the end of other, but not all of
// other.
func (r Range[T]) OverlapsEndOf(other Range[T]) bool {
	return other.Start < r.Start && r.Start < other.End && other.End <= r.End
}

package rangecut

import "golang.org/x/exp/constraints"

// Number is the set of element types that support addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// Compose returns the absolute range selected by inner, where inner is
// relative to outer.Start. Indexing a sequence by the result is the same as
// indexing it by outer and then indexing that by inner.
//
// It panics if inner reaches before outer.Start (for example through a
// negative or wrapping offset) or past outer.End, including when the end
// offset wraps.
func Compose[T Number](outer, inner Range[T]) Range[T] {
	start := outer.Start + inner.Start
	end := outer.Start + inner.End

	if !(outer.Start <= start) {
		fail("compose", "outer.Start <= outer.Start+inner.Start", "%v starts before %v", inner, outer)
	}
	// a wrapped end sum lands below outer.Start
	if !(outer.Start <= end) {
		fail("compose", "outer.Start <= outer.Start+inner.End", "%v relative to %v wraps", inner, outer)
	}
	if !(end <= outer.End) {
		fail("compose", "outer.Start+inner.End <= outer.End", "%v relative to %v ends at %v", inner, outer, end)
	}

	return Range[T]{Start: start, End: end}
}

// Len returns the number of positions in r.
func Len[T Number](r Range[T]) T {
	if !r.IsValid() {
		fail("len", "r.Start <= r.End", "%v is not well-formed", r)
	}

	return r.End - r.Start
}

// Index returns s[r.Start:r.End].
func Index[S ~[]E, E any, T constraints.Integer](s S, r Range[T]) S {
	switch {
	case r.Start < 0:
		fail("index", "r.Start >= 0", "%v starts before 0", r)
	case !r.IsValid():
		fail("index", "r.Start <= r.End", "%v is not well-formed", r)
	case uint64(r.End) > uint64(len(s)):
		fail("index", "r.End <= len(s)", "%v out of range for length %d", r, len(s))
	}

	return s[int(r.Start):int(r.End)]
}

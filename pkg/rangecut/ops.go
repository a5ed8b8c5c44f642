package rangecut

// Concat joins r with the range that immediately follows it.
//
// It panics unless after.Start == r.End.
func (r Range[T]) Concat(after Range[T]) Range[T] {
	if !r.Adjacent(after) {
		fail("concat", "r.End == after.Start", "%v does not end where %v starts", r, after)
	}

	return Range[T]{Start: r.Start, End: after.End}
}

// RemovePrefix drops prefix from the front of r. Removing r from itself
// yields the empty range End-End.
//
// It panics unless prefix starts at r.Start and ends within r.
func (r Range[T]) RemovePrefix(prefix Range[T]) Range[T] {
	if prefix.Start != r.Start {
		fail("remove prefix", "prefix.Start == r.Start", "%v does not start where %v starts", prefix, r)
	}
	if !r.containsOrEndsAt(prefix.End) {
		fail("remove prefix", "prefix.End <= r.End", "%v ends past %v", prefix, r)
	}

	return Range[T]{Start: prefix.End, End: r.End}
}

// RemoveSuffix drops suffix from the back of r.
//
// It panics unless suffix starts within r and ends at r.End.
func (r Range[T]) RemoveSuffix(suffix Range[T]) Range[T] {
	if !(r.Start <= suffix.Start) {
		fail("remove suffix", "r.Start <= suffix.Start", "%v starts before %v", suffix, r)
	}
	if suffix.End != r.End {
		fail("remove suffix", "suffix.End == r.End", "%v does not end where %v ends", suffix, r)
	}

	return Range[T]{Start: r.Start, End: suffix.Start}
}

// Cut splits r into the part before middle starts and the part after middle
// ends. The two results are separated by exactly middle, so
// before.Concat(middle).Concat(after) == r.
//
// It panics if middle is empty or reaches outside r.
func (r Range[T]) Cut(middle Range[T]) (before, after Range[T]) {
	if !r.Contains(middle.Start) {
		fail("cut", "r.Start <= middle.Start < r.End", "%v does not contain the start of %v", r, middle)
	}
	if !r.containsOrEndsAt(middle.End) {
		fail("cut", "middle.End <= r.End", "%v ends past %v", middle, r)
	}
	if !(middle.Start < middle.End) {
		fail("cut", "middle.Start < middle.End", "%v is empty", middle)
	}
	if !(r.Start <= middle.Start) {
		fail("cut", "r.Start <= middle.Start", "%v starts before %v", middle, r)
	}

	return Range[T]{Start: r.Start, End: middle.Start}, Range[T]{Start: middle.End, End: r.End}
}

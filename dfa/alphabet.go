package dfa

import (
	"sort"

	"github.com/coregx/lexgen/interval"
)

// refineAlphabet implements the alphabet-refinement algorithm: given a
// multiset of (possibly overlapping) intervals, produce the coarsest
// partition of their union into pairwise disjoint intervals, such that
// every piece of the result is either fully contained in or fully
// disjoint from every input interval.
//
// A worklist starts holding every input interval. Each popped interval c
// is checked against the disjoint set built so far; if it overlaps some
// stored piece o, o is pulled back out and c/o are split at the overlap's
// boundaries into up to three non-empty pieces (the part before the
// overlap, the intersection, and the part after), all of which go back
// on the worklist for further splitting. If c overlaps nothing already
// stored, it is emitted as-is. The process terminates because each split
// step strictly reduces the number of bytes covered, counted with
// multiplicity, by the worklist and the stored pieces together: c and o
// are replaced by pieces covering their union, so the overlap is counted
// once instead of twice.
func refineAlphabet(intervals []interval.Interval) []interval.Interval {
	worklist := make([]interval.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.Empty() {
			worklist = append(worklist, iv)
		}
	}

	var result []interval.Interval
	for len(worklist) > 0 {
		c := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		overlapAt := -1
		for i, o := range result {
			if c.Overlaps(o) {
				overlapAt = i
				break
			}
		}
		if overlapAt == -1 {
			result = append(result, c)
			continue
		}

		o := result[overlapAt]
		result = append(result[:overlapAt], result[overlapAt+1:]...)

		overlapMin := max(c.Min, o.Min)
		overlapMax := min(c.Max, o.Max)
		if lo := min(c.Min, o.Min); lo != overlapMin {
			worklist = append(worklist, interval.Of(lo, overlapMin-1))
		}
		worklist = append(worklist, interval.Of(overlapMin, overlapMax))
		if hi := max(c.Max, o.Max); hi != overlapMax {
			worklist = append(worklist, interval.Of(overlapMax+1, hi))
		}
	}

	sort.Slice(result, func(i, j int) bool { return interval.Compare(result[i], result[j]) < 0 })
	return result
}

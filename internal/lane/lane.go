// Package lane implements the column-packing algorithm that assigns
// lifespan intervals to the minimum number of parallel lanes, plus the
// coordinate mapping from (lane, years) to chart geometry.
package lane

import (
	"fmt"
	"sort"

	"github.com/papapumpkin/aeon/internal/span"
)

// Assignment is the result of one allocation pass: a lane index per span
// ID and the total number of lanes in use.
type Assignment struct {
	// Lanes maps span ID to its 0-based lane index.
	Lanes map[string]int

	// Count is the total number of lanes. Equals the maximum number of
	// spans overlapping at any single year.
	Count int
}

// Assign packs the given spans into the minimum number of lanes so that
// no two spans sharing a lane overlap in time. Open spans resolve their
// end year to nowYear before packing.
//
// Spans are processed descending by effective end year, ties broken by
// descending start year, further ties kept in input order (stable sort).
// Each span takes the lowest-indexed lane whose current occupant starts
// no earlier than the span ends; boundary years may be shared. The pass
// is a pure function of its arguments: same input, same assignment.
func Assign(spans []span.Span, nowYear int) (Assignment, error) {
	out := Assignment{Lanes: make(map[string]int, len(spans))}
	if len(spans) == 0 {
		return out, nil
	}

	type item struct {
		id    string
		start int
		end   int
	}
	items := make([]item, 0, len(spans))
	for _, s := range spans {
		end := s.EffectiveEnd(nowYear)
		if s.StartYear > end {
			return Assignment{}, fmt.Errorf("lane: %w", span.ErrInvalidSpan)
		}
		items = append(items, item{id: s.ID, start: s.StartYear, end: end})
	}

	// Newest-ending first; among equal ends the later start (shorter,
	// more recent span) goes first. Stable so unchanged input yields
	// unchanged lanes.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].end != items[j].end {
			return items[i].end > items[j].end
		}
		return items[i].start > items[j].start
	})

	// avail[k] holds the start year of lane k's current occupant. Since
	// the scan runs backward in time, lane k is free for a span once its
	// occupant starts at or after the span's effective end.
	var avail []int
	for _, it := range items {
		placed := false
		for k := range avail {
			if avail[k] >= it.end {
				out.Lanes[it.id] = k
				avail[k] = it.start
				placed = true
				break
			}
		}
		if !placed {
			out.Lanes[it.id] = len(avail)
			avail = append(avail, it.start)
		}
	}
	out.Count = len(avail)
	return out, nil
}

// Apply writes an assignment's lane indices back onto the spans,
// matching by ID. Spans absent from the assignment are left untouched.
func Apply(a Assignment, spans []*span.Span) {
	for _, s := range spans {
		if k, ok := a.Lanes[s.ID]; ok {
			s.Lane = k
		}
	}
}

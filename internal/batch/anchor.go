package batch

// findAnchor computes the earliest timestamp a >= now at which every
// instant in [a, a+reqRuntime) has at least `machines` free under the
// planned profile described by events (ascending by time, releases before
// completions at equal time). freeM is the number of machines free right
// now, before any of events has applied.
//
// This is conservative backfilling: events belonging to already-queued
// jobs are treated as fixed reservations, so a newly released job can
// never push an earlier job's anchor later.
func findAnchor(events []event, now, reqRuntime, machines, freeM int) int {
	a := now
	avail := freeM

	for _, ev := range events {
		if ev.t >= a+reqRuntime && avail >= machines {
			// Enough capacity has held continuously since a; a is valid.
			return a
		}

		before := avail
		avail += ev.delta

		switch {
		case avail < machines:
			// The reservation window broke; the candidate restarts here.
			a = maxInt(now, ev.t)
		case ev.delta > 0 && before < machines:
			// Capacity first becomes sufficient at this event.
			a = maxInt(now, ev.t)
		}
	}

	// Event list exhausted: the remaining (empty) future profile always
	// has all m machines free, which covers any job since machines <= m.
	return a
}

// maxInt clamps candidate restarts to now. A running job's declared end
// can lie in the past relative to now when it is running later than
// planned, and the profile still carries that event so planning keeps
// assuming declared runtimes, but the anchor itself must never regress
// before now.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package batch

import "container/heap"

// event is a single (timestamp, Δfree-machines) point in the future
// reservation profile.
type event struct {
	t     int
	delta int // negative: machines reserved; positive: machines freed
}

// eventHeap is a min-heap over events ordered by timestamp, with releases
// (negative delta) sorted before completions (positive delta) at the same
// timestamp. A reservation taking effect in the same instant as a freeing
// event is still counted against capacity.
type eventHeap []event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].t != h[j].t {
		return h[i].t < h[j].t
	}
	return h[i].delta < h[j].delta
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(event)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// buildEvents enumerates every future reservation-change implied by the
// current profile: one (ExpectedEnd, +machines) event per running job,
// and two events per queued job, (PlannedStart, -machines) and
// (ExpectedEnd, +machines). The job currently being placed is never a
// member of running or queue when this is called; it is inserted only
// after its anchor is decided.
func buildEvents(running []Job, queue []QueuedJob) []event {
	h := make(eventHeap, 0, len(running)+2*len(queue))
	for _, rj := range running {
		h = append(h, event{t: rj.ExpectedEnd(), delta: rj.Machines})
	}
	for _, qj := range queue {
		expectedEnd := qj.PlannedStart + qj.Job.ReqRuntime
		h = append(h, event{t: qj.PlannedStart, delta: -qj.Job.Machines})
		h = append(h, event{t: expectedEnd, delta: qj.Job.Machines})
	}
	heap.Init(&h)

	events := make([]event, 0, len(h))
	for h.Len() > 0 {
		events = append(events, heap.Pop(&h).(event))
	}
	return events
}

package batch

import "sort"

// profile is the reservation view the scheduler reasons about: the running
// jobs with their expected/actual end times, the queued jobs with their
// planned starts, and the current free-machine count. It is mutated only
// through the methods below.
type profile struct {
	m       int
	freeM   int
	running []Job
	queue   []QueuedJob
}

func newProfile(m int) *profile {
	return &profile{m: m, freeM: m}
}

// anchorFor finds the earliest feasible start time for job, treating every
// running and queued job as a fixed reservation.
func (p *profile) anchorFor(job Job, now int) int {
	events := buildEvents(p.running, p.queue)
	return findAnchor(events, now, job.ReqRuntime, job.Machines, p.freeM)
}

// startRunning transitions job into the running set at startTime,
// decrementing freeM. Caller must have already verified freeM >= machines.
func (p *profile) startRunning(job Job, startTime int) Job {
	job.StartTime = startTime
	job.Started = true
	p.running = append(p.running, job)
	p.freeM -= job.Machines
	return job
}

// enqueue inserts a queued job and keeps the queue sorted by planned start,
// ties broken by insertion order (sort.SliceStable preserves the relative
// order of the jobs already present, and the new job is appended last so a
// tie with an existing entry keeps the existing one first).
func (p *profile) enqueue(qj QueuedJob) {
	p.queue = append(p.queue, qj)
	sort.SliceStable(p.queue, func(i, j int) bool {
		return p.queue[i].PlannedStart < p.queue[j].PlannedStart
	})
}

// removeRunning removes the running job with the given id, crediting its
// machines back to freeM. Returns false if no such job is running.
func (p *profile) removeRunning(id int) (Job, bool) {
	for i, rj := range p.running {
		if rj.ID == id {
			p.running = append(p.running[:i], p.running[i+1:]...)
			p.freeM += rj.Machines
			return rj, true
		}
	}
	return Job{}, false
}

// popQueueHead removes and returns the first queued job, if any.
func (p *profile) popQueueHead() (QueuedJob, bool) {
	if len(p.queue) == 0 {
		return QueuedJob{}, false
	}
	head := p.queue[0]
	p.queue = p.queue[1:]
	return head, true
}

// drainQueue empties the queue and returns its contents in order, for
// re-planning.
func (p *profile) drainQueue() []QueuedJob {
	drained := p.queue
	p.queue = nil
	return drained
}

func (p *profile) queueLen() int   { return len(p.queue) }
func (p *profile) runningLen() int { return len(p.running) }

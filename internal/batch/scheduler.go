package batch

import "fmt"

// Scheduler is the facade consumed by the simulation driver: QueueJob,
// FinishJob, NextJobToFinish, plus the start_times table the output
// formatter reads. It owns the profile, the queue, and start_times
// exclusively; there is no shared or concurrent access, so no locking.
type Scheduler struct {
	profile    *profile
	startTimes map[int]int
	lastNow    int
	sawNow     bool
}

// NewScheduler constructs a scheduler over a pool of m identical machines.
func NewScheduler(m int) *Scheduler {
	return &Scheduler{
		profile:    newProfile(m),
		startTimes: make(map[int]int),
	}
}

// NextJobToFinish returns the running job with the earliest ActualEnd,
// ties broken by lowest ID. The returned Job carries its StartTime, so
// the driver can compute ActualEnd()/ExpectedEnd() itself without the
// scheduler exposing a fourth operation.
func (s *Scheduler) NextJobToFinish() (Job, bool) {
	if len(s.profile.running) == 0 {
		return Job{}, false
	}

	best := s.profile.running[0]
	for _, rj := range s.profile.running[1:] {
		if rj.ActualEnd() < best.ActualEnd() ||
			(rj.ActualEnd() == best.ActualEnd() && rj.ID < best.ID) {
			best = rj
		}
	}
	return best, true
}

// StillRunning reports whether any job remains queued or running.
func (s *Scheduler) StillRunning() bool {
	return s.profile.queueLen() > 0 || s.profile.runningLen() > 0
}

// StartTimes returns a snapshot of the id -> assigned start time table.
// Entries are filled monotonically; a caller holding this snapshot never
// observes a value change.
func (s *Scheduler) StartTimes() map[int]int {
	out := make(map[int]int, len(s.startTimes))
	for id, t := range s.startTimes {
		out[id] = t
	}
	return out
}

// startJob assigns job its final start time, records it as running, and
// allocates its machines. Preconditions: freeM >= job.Machines and
// start_times[job.ID] is unassigned; both violations are bugs in this
// package, never a caller error, so they panic rather than return an
// error.
func (s *Scheduler) startJob(job Job, now int) {
	if s.profile.freeM < job.Machines {
		panic(fmt.Sprintf("batch: cannot start job %d: free_m=%d < machines=%d",
			job.ID, s.profile.freeM, job.Machines))
	}
	if _, assigned := s.startTimes[job.ID]; assigned {
		panic(fmt.Sprintf("batch: job %d already has a start time", job.ID))
	}

	s.profile.startRunning(job, now)
	s.startTimes[job.ID] = now
}

// checkNow enforces the scheduler's ordering guarantee: observed now
// values across successive calls never decrease.
func (s *Scheduler) checkNow(now int) {
	if s.sawNow && now < s.lastNow {
		panic(fmt.Sprintf("batch: now went backwards: %d after %d", now, s.lastNow))
	}
	s.lastNow = now
	s.sawNow = true
}

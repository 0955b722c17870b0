package batch

// FinishJob is called when a running job's actual runtime elapses. It
// removes the job from running, credits its machines back, and runs
// profile compression at now == job.ActualEnd, which may be earlier than
// job.ExpectedEnd, the case compression exists to react to.
func (s *Scheduler) FinishJob(job Job) {
	rj, ok := s.profile.removeRunning(job.ID)
	if !ok {
		panic("batch: finish_job called with a job that is not running")
	}

	now := rj.ActualEnd()
	s.checkNow(now)
	s.compress(now)
}

// compress runs a fast path that starts queue heads while they fit the
// freed capacity, followed by a single order-preserving re-plan of
// whatever remains. The re-plan subsumes the fast path for the jobs it
// touches, since planAndMaybeStart already starts anything whose anchor
// resolves to now, so one pass is sufficient and, since it depends only
// on the unchanged profile, idempotent when invoked again with no
// intervening event.
func (s *Scheduler) compress(now int) {
	for s.profile.queueLen() > 0 {
		head := s.profile.queue[0]
		if head.Job.Machines > s.profile.freeM {
			break
		}
		s.profile.popQueueHead()
		s.startJob(head.Job, now)
	}

	s.replanQueue(now)
}

// replanQueue moves the queue aside, clears it, and re-anchors each job in
// its original order against the evolving profile. This preserves queue
// order: no job is overtaken by a later-released one with a higher
// machine demand.
func (s *Scheduler) replanQueue(now int) {
	if s.profile.queueLen() == 0 {
		return
	}

	drained := s.profile.drainQueue()
	for _, qj := range drained {
		s.planAndMaybeStart(qj.Job, now)
	}
}

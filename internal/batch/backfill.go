package batch

// QueueJob is the release-time backfill policy. It must be called with
// now == job.ReleaseTime; job.Machines must not exceed the pool size.
// Both are precondition violations and are fatal programmer errors, not
// recoverable runtime errors.
func (s *Scheduler) QueueJob(job Job, now int) {
	s.checkNow(now)
	if now < job.ReleaseTime {
		panic("batch: queue_job called with now before job.ReleaseTime")
	}
	if job.Machines > s.profile.m {
		panic("batch: queue_job called with job.Machines > pool size")
	}

	s.planAndMaybeStart(job, now)
}

// planAndMaybeStart computes job's anchor against the current profile and
// either starts it immediately or inserts it into the queue at that
// anchor. findAnchor begins its walk at a = now with the profile's actual
// current freeM, so a job whose machines stay free for its whole declared
// runtime against the existing reservations resolves to anchor == now, and
// no separate fast-path branch is needed here. A job that fits freeM now
// but would overlap a queued reservation gets a later anchor and is
// queued.
func (s *Scheduler) planAndMaybeStart(job Job, now int) {
	anchor := s.profile.anchorFor(job, now)

	if anchor == now && s.profile.freeM >= job.Machines {
		s.startJob(job, now)
		return
	}

	s.profile.enqueue(QueuedJob{Job: job, PlannedStart: anchor})
}

// Package driver implements the simulation driver: it interleaves the
// release and completion event streams and feeds them to the scheduler
// as QueueJob/FinishJob calls.
package driver

import (
	"log"

	"github.com/ahmadhassan44/batchsim/internal/batch"
	"github.com/ahmadhassan44/batchsim/internal/instance"
)

// Run simulates inst to completion and returns the final start_times
// table. verbose enables the per-event diagnostic log lines; it never
// changes scheduling outcomes.
func Run(inst instance.Instance, verbose bool) map[int]int {
	sched := batch.NewScheduler(inst.Machines)

	if verbose {
		log.Printf("[driver] %s", inst.String())
	}

	nextIdx := 0
	for nextIdx < len(inst.Jobs) {
		nextRelease := inst.Jobs[nextIdx]
		finishing, hasFinishing := sched.NextJobToFinish()

		if hasFinishing && finishing.ActualEnd() <= nextRelease.ReleaseTime {
			if verbose {
				log.Printf("[driver] finish job %d at t=%d", finishing.ID, finishing.ActualEnd())
			}
			sched.FinishJob(finishing)
			continue
		}

		if verbose {
			log.Printf("[driver] release job %d at t=%d", nextRelease.ID, nextRelease.ReleaseTime)
		}
		sched.QueueJob(nextRelease, nextRelease.ReleaseTime)
		nextIdx++
	}

	for sched.StillRunning() {
		finishing, ok := sched.NextJobToFinish()
		if !ok {
			// still_running() was true yet nothing is running: every
			// queued job failed to ever become runnable, which can only
			// mean a bug in the scheduler core, not a caller error.
			panic("driver: still_running true but jobs are queued and none is running")
		}
		if verbose {
			log.Printf("[driver] finish job %d at t=%d", finishing.ID, finishing.ActualEnd())
		}
		sched.FinishJob(finishing)
	}

	return sched.StartTimes()
}

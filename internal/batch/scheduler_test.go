package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario runs a scheduler over jobs sorted by release time the way the
// driver would, completions interleaved by actual end time, and returns
// the final start_times table.
func scenario(t *testing.T, m int, jobs []Job) map[int]int {
	t.Helper()
	sched := NewScheduler(m)

	idx := 0
	for idx < len(jobs) {
		next, hasRunning := sched.NextJobToFinish()
		release := jobs[idx]

		if hasRunning && next.ActualEnd() <= release.ReleaseTime {
			sched.FinishJob(next)
		} else {
			sched.QueueJob(release, release.ReleaseTime)
			idx++
		}
	}

	for sched.StillRunning() {
		next, ok := sched.NextJobToFinish()
		require.True(t, ok)
		sched.FinishJob(next)
	}

	return sched.StartTimes()
}

func TestScenarioA_PureFIFOFit(t *testing.T) {
	jobs := []Job{
		{ID: 1, ReleaseTime: 0, ReqRuntime: 5, ActRuntime: 5, Machines: 2},
		{ID: 2, ReleaseTime: 0, ReqRuntime: 5, ActRuntime: 5, Machines: 2},
	}
	got := scenario(t, 4, jobs)
	assert.Equal(t, map[int]int{1: 0, 2: 0}, got)
}

func TestScenarioB_Queueing(t *testing.T) {
	jobs := []Job{
		{ID: 1, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 2},
		{ID: 2, ReleaseTime: 1, ReqRuntime: 5, ActRuntime: 5, Machines: 1},
		{ID: 3, ReleaseTime: 2, ReqRuntime: 5, ActRuntime: 5, Machines: 1},
	}
	got := scenario(t, 2, jobs)
	assert.Equal(t, map[int]int{1: 0, 2: 10, 3: 10}, got)
}

func TestScenarioC_Backfill(t *testing.T) {
	jobs := []Job{
		{ID: 1, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 3},
		{ID: 2, ReleaseTime: 1, ReqRuntime: 20, ActRuntime: 20, Machines: 2},
		{ID: 3, ReleaseTime: 2, ReqRuntime: 5, ActRuntime: 5, Machines: 1},
	}
	got := scenario(t, 4, jobs)
	assert.Equal(t, map[int]int{1: 0, 2: 10, 3: 2}, got)
}

func TestScenarioD_CompressionOnEarlyFinish(t *testing.T) {
	jobs := []Job{
		{ID: 1, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 4, Machines: 1},
		{ID: 2, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 2},
	}
	got := scenario(t, 2, jobs)
	assert.Equal(t, map[int]int{1: 0, 2: 4}, got)
}

func TestScenarioE_LateActualNoHarm(t *testing.T) {
	jobs := []Job{
		{ID: 1, ReleaseTime: 0, ReqRuntime: 5, ActRuntime: 9, Machines: 1},
		{ID: 2, ReleaseTime: 0, ReqRuntime: 5, ActRuntime: 5, Machines: 2},
	}
	got := scenario(t, 2, jobs)
	assert.Equal(t, map[int]int{1: 0, 2: 9}, got)
}

func TestScenarioF_MultiAnchorChain(t *testing.T) {
	jobs := []Job{
		{ID: 1, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 2},
		{ID: 2, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 2},
		{ID: 3, ReleaseTime: 1, ReqRuntime: 5, ActRuntime: 5, Machines: 1},
		{ID: 4, ReleaseTime: 2, ReqRuntime: 8, ActRuntime: 8, Machines: 3},
	}
	got := scenario(t, 3, jobs)
	assert.Equal(t, map[int]int{1: 0, 2: 10, 3: 1, 4: 20}, got)
}

func TestStartTimesSnapshotIsACopy(t *testing.T) {
	sched := NewScheduler(2)
	sched.QueueJob(Job{ID: 1, ReleaseTime: 0, ReqRuntime: 1, ActRuntime: 1, Machines: 1}, 0)

	snap := sched.StartTimes()
	snap[1] = 999

	assert.Equal(t, 0, sched.StartTimes()[1])
}

func TestFinishJobOnUnknownJobPanics(t *testing.T) {
	sched := NewScheduler(1)
	assert.Panics(t, func() {
		sched.FinishJob(Job{ID: 42, ActRuntime: 1})
	})
}

func TestQueueJobBeforeReleasePanics(t *testing.T) {
	sched := NewScheduler(1)
	assert.Panics(t, func() {
		sched.QueueJob(Job{ID: 1, ReleaseTime: 5, ReqRuntime: 1, Machines: 1}, 4)
	})
}

func TestQueueJobOverCapacityPanics(t *testing.T) {
	sched := NewScheduler(2)
	assert.Panics(t, func() {
		sched.QueueJob(Job{ID: 1, ReleaseTime: 0, ReqRuntime: 1, Machines: 3}, 0)
	})
}

func TestNowGoingBackwardsPanics(t *testing.T) {
	sched := NewScheduler(2)
	sched.QueueJob(Job{ID: 1, ReleaseTime: 5, ReqRuntime: 1, Machines: 1}, 5)
	assert.Panics(t, func() {
		sched.QueueJob(Job{ID: 2, ReleaseTime: 1, ReqRuntime: 1, Machines: 1}, 1)
	})
}

func TestCompressionIsIdempotent(t *testing.T) {
	sched := NewScheduler(3)
	sched.QueueJob(Job{ID: 1, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 2}, 0)
	sched.QueueJob(Job{ID: 2, ReleaseTime: 0, ReqRuntime: 10, ActRuntime: 10, Machines: 2}, 0)
	sched.QueueJob(Job{ID: 3, ReleaseTime: 1, ReqRuntime: 5, ActRuntime: 5, Machines: 1}, 1)
	sched.QueueJob(Job{ID: 4, ReleaseTime: 2, ReqRuntime: 8, ActRuntime: 8, Machines: 3}, 2)

	require.Equal(t, 2, sched.profile.queueLen())

	sched.compress(2)
	beforeStarts := sched.StartTimes()
	beforeQueue := append([]QueuedJob(nil), sched.profile.queue...)

	sched.compress(2)
	afterStarts := sched.StartTimes()
	afterQueue := append([]QueuedJob(nil), sched.profile.queue...)

	assert.Equal(t, beforeStarts, afterStarts)
	assert.Equal(t, beforeQueue, afterQueue)
}

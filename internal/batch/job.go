// Package batch implements the resource-profile and backfill engine of the
// scheduler: tracking running and queued jobs, searching for feasible start
// times, and re-planning the queue when a job finishes early.
package batch

// Job is a job record. Everything except StartTime is immutable once
// parsed. StartTime is assigned exactly once, by the scheduler, and never
// mutated after.
//
// ReqRuntime is the only runtime a planning function, the anchor search,
// the event enumerator, or compression, may read. ActRuntime is
// simulation ground truth; within this package it is read only through
// ActualEnd, which NextJobToFinish uses to order completions, FinishJob
// uses as the compression time, and the driver uses to interleave events.
type Job struct {
	ID          int
	ReleaseTime int
	ReqRuntime  int
	ActRuntime  int
	Machines    int

	// StartTime is undefined (zero value, Started == false) until the
	// scheduler assigns it.
	StartTime int
	Started   bool
}

// ExpectedEnd is when the job is planned to finish, assuming it runs for
// exactly its declared runtime. Valid only once Started.
func (j Job) ExpectedEnd() int { return j.StartTime + j.ReqRuntime }

// ActualEnd is when the job really finishes, per simulation ground truth.
// Valid only once Started; this is the timestamp the driver uses to decide
// event ordering.
func (j Job) ActualEnd() int { return j.StartTime + j.ActRuntime }

// QueuedJob is a Job that has been released but not yet started, carrying
// its current anchor (planned start time).
type QueuedJob struct {
	Job          Job
	PlannedStart int
}

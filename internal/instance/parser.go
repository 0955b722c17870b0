package instance

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ahmadhassan44/batchsim/internal/batch"
)

// ParseError wraps a malformed-input failure with enough context to log
// a useful diagnostic without exposing parser internals to callers that
// only need to detect the error class.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// InfeasibleError reports a job whose machine requirement exceeds the
// pool size, a case the anchor search would never terminate against if
// it were allowed through.
type InfeasibleError struct {
	JobID    int
	Machines int
	Pool     int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("infeasible instance: job %d requires %d machines, pool has %d",
		e.JobID, e.Machines, e.Pool)
}

// Parse reads the whitespace-delimited instance format from r: a machine
// count, a job count, then one "release id req_runtime act_runtime
// machines" line per job. Jobs are expected sorted ascending by release
// time; Parse validates this rather than silently re-sorting, since the
// driver treats the ordering as a precondition it relies on.
func Parse(r io.Reader) (Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	tok := func(field string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, &ParseError{Reason: fmt.Sprintf("reading %s: %v", field, err)}
			}
			return 0, &ParseError{Reason: fmt.Sprintf("unexpected end of input reading %s", field)}
		}
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return 0, &ParseError{Reason: fmt.Sprintf("%s must be an integer, got %q", field, sc.Text())}
		}
		return v, nil
	}

	m, err := tok("m")
	if err != nil {
		return Instance{}, err
	}
	if m <= 0 {
		return Instance{}, &ParseError{Reason: fmt.Sprintf("m must be positive, got %d", m)}
	}

	n, err := tok("n")
	if err != nil {
		return Instance{}, err
	}
	if n < 0 {
		return Instance{}, &ParseError{Reason: fmt.Sprintf("n must be non-negative, got %d", n)}
	}

	jobs := make([]batch.Job, 0, n)
	lastRelease := 0
	for i := 0; i < n; i++ {
		release, err := tok("release_time")
		if err != nil {
			return Instance{}, err
		}
		id, err := tok("id")
		if err != nil {
			return Instance{}, err
		}
		reqRuntime, err := tok("req_runtime")
		if err != nil {
			return Instance{}, err
		}
		actRuntime, err := tok("act_runtime")
		if err != nil {
			return Instance{}, err
		}
		machines, err := tok("machines")
		if err != nil {
			return Instance{}, err
		}

		if release < 0 || reqRuntime < 0 || actRuntime < 0 {
			return Instance{}, &ParseError{Reason: fmt.Sprintf("job %d has a negative time field", id)}
		}
		if machines <= 0 {
			return Instance{}, &ParseError{Reason: fmt.Sprintf("job %d must require at least 1 machine, got %d", id, machines)}
		}
		if id <= 0 || id > n {
			return Instance{}, &ParseError{Reason: fmt.Sprintf("job id %d out of range 1..%d", id, n)}
		}
		if machines > m {
			return Instance{}, &InfeasibleError{JobID: id, Machines: machines, Pool: m}
		}
		if i > 0 && release < lastRelease {
			return Instance{}, &ParseError{Reason: "jobs are not sorted ascending by release_time"}
		}
		lastRelease = release

		jobs = append(jobs, batch.Job{
			ID:          id,
			ReleaseTime: release,
			ReqRuntime:  reqRuntime,
			ActRuntime:  actRuntime,
			Machines:    machines,
		})
	}

	seen := make(map[int]bool, n)
	for _, j := range jobs {
		if seen[j.ID] {
			return Instance{}, &ParseError{Reason: fmt.Sprintf("duplicate job id %d", j.ID)}
		}
		seen[j.ID] = true
	}

	return Instance{Machines: m, Jobs: jobs}, nil
}

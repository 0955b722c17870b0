// Package instance parses the batchsim wire format into an ordered job
// list, kept separate from the scheduler core.
package instance

import (
	"fmt"
	"strings"

	"github.com/ahmadhassan44/batchsim/internal/batch"
)

// Instance is the parsed input: a machine pool size and the jobs to
// schedule, sorted ascending by release time (a precondition the driver
// relies on, not something it re-sorts defensively).
type Instance struct {
	Machines int
	Jobs     []batch.Job
}

// String renders the instance as a diagnostic dump, printed before
// simulation begins when verbose logging is on. It is opt-in output,
// never consulted by the scheduler itself.
func (inst Instance) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M = %d\nN = %d\nJobs = [", inst.Machines, len(inst.Jobs))
	for i, j := range inst.Jobs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(j=%d, r_j=%d, p_j=%d, ~p_j=%d, m_j=%d)",
			j.ID, j.ReleaseTime, j.ReqRuntime, j.ActRuntime, j.Machines)
	}
	b.WriteString("]")
	return b.String()
}

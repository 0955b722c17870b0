// Package output implements the output formatter: it prints the final n
// and the id/start_time table, one line per job in ascending id order,
// flushed once before returning.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Write prints startTimes to w: a line with the job count, then one
// "id start_time" line per job in ascending id order. Writes are
// buffered and flushed exactly once at the end, no per-line flush in
// the hot loop.
func Write(w io.Writer, startTimes map[int]int) error {
	ids := make([]int, 0, len(startTimes))
	for id := range startTimes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintf(bw, "%d %d\n", id, startTimes[id]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Package stats derives the read-only aggregations behind the
// statistics screen. Everything here is a pure function of its inputs
// and is recomputed on every render.
package stats

import "ischedule/internal/models"

// Counts holds the per-status task totals.
type Counts struct {
	InProgress int
	Completed  int
}

// Total returns the number of counted tasks.
func (c Counts) Total() int {
	return c.InProgress + c.Completed
}

// StatusCounts tallies tasks by status. Scope the slice before calling
// to count a single list.
func StatusCounts(tasks []models.Task) Counts {
	var c Counts
	for _, t := range tasks {
		switch t.Status {
		case models.StatusCompleted:
			c.Completed++
		default:
			c.InProgress++
		}
	}
	return c
}

// CompletionPercent returns the share of completed tasks as a
// percentage, 0 when there are no tasks.
func CompletionPercent(tasks []models.Task) float64 {
	c := StatusCounts(tasks)
	if c.Total() == 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Total()) * 100
}

// ListShare is one list's slice of the status-filtered total.
type ListShare struct {
	List    models.TaskList
	Count   int
	Percent float64
}

// Breakdown computes, for each list, how many of its tasks have the
// given status and that count's percentage share of the filtered total.
// Lists with no matching tasks are omitted; an empty slice comes back
// when nothing matches at all.
func Breakdown(lists []models.TaskList, tasks []models.Task, status models.Status) []ListShare {
	counts := make(map[string]int, len(lists))
	total := 0
	for _, t := range tasks {
		if t.Status != status {
			continue
		}
		counts[t.ListID]++
		total++
	}

	shares := make([]ListShare, 0, len(lists))
	if total == 0 {
		return shares
	}

	for _, l := range lists {
		n := counts[l.ID]
		if n == 0 {
			continue
		}
		shares = append(shares, ListShare{
			List:    l,
			Count:   n,
			Percent: float64(n) / float64(total) * 100,
		})
	}
	return shares
}

package models

import (
	"sort"
	"strings"
)

// StatusFilter selects which tasks a view shows. The zero value shows
// everything.
type StatusFilter string

const (
	FilterAll        StatusFilter = "All"
	FilterInProgress StatusFilter = StatusFilter(StatusInProgress)
	FilterCompleted  StatusFilter = StatusFilter(StatusCompleted)
)

// Filter holds the optional display filters for a task list.
// Zero values mean the filter is not applied.
type Filter struct {
	Status StatusFilter
	Search string
}

// SortOptions selects the task ordering. With both flags set, priority
// rank descending is the primary key and the due instant ascending
// breaks ties. With neither set, input order is preserved.
type SortOptions struct {
	ByDate     bool
	ByPriority bool
}

// FilterTasks returns the tasks matching f. Status matching is exact,
// search is a case-insensitive substring match against the title.
func FilterTasks(tasks []Task, f Filter) []Task {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Status != "" && f.Status != FilterAll && Status(f.Status) != t.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTasks orders tasks in place according to opts.
func SortTasks(tasks []Task, opts SortOptions) {
	switch {
	case opts.ByPriority && opts.ByDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			ri, rj := tasks[i].Priority.Rank(), tasks[j].Priority.Rank()
			if ri != rj {
				return ri > rj
			}
			return tasks[i].DueInstant().Before(tasks[j].DueInstant())
		})
	case opts.ByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		})
	case opts.ByDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueInstant().Before(tasks[j].DueInstant())
		})
	}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func taskWith(title string, p Priority, due time.Time, status Status) Task {
	return Task{
		Title:    title,
		Priority: p,
		DueDate:  due,
		DueTime:  due,
		Status:   status,
	}
}

func TestSortByPriorityDescending(t *testing.T) {
	due := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		taskWith("low", PriorityLow, due, StatusInProgress),
		taskWith("high", PriorityHigh, due, StatusInProgress),
		taskWith("medium", PriorityMedium, due, StatusInProgress),
	}

	SortTasks(tasks, SortOptions{ByPriority: true})

	assert.Equal(t, "high", tasks[0].Title)
	assert.Equal(t, "medium", tasks[1].Title)
	assert.Equal(t, "low", tasks[2].Title)
}

func TestSortByDateAscending(t *testing.T) {
	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		taskWith("later", PriorityLow, base.AddDate(0, 0, 2), StatusInProgress),
		taskWith("soon", PriorityLow, base, StatusInProgress),
		taskWith("middle", PriorityLow, base.AddDate(0, 0, 1), StatusInProgress),
	}

	SortTasks(tasks, SortOptions{ByDate: true})

	assert.Equal(t, []string{"soon", "middle", "later"},
		[]string{tasks[0].Title, tasks[1].Title, tasks[2].Title})
}

func TestSortCombinedPriorityPrimaryDateTieBreak(t *testing.T) {
	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		taskWith("high-late", PriorityHigh, base.AddDate(0, 0, 3), StatusInProgress),
		taskWith("low-early", PriorityLow, base, StatusInProgress),
		taskWith("high-early", PriorityHigh, base, StatusInProgress),
	}

	SortTasks(tasks, SortOptions{ByDate: true, ByPriority: true})

	assert.Equal(t, []string{"high-early", "high-late", "low-early"},
		[]string{tasks[0].Title, tasks[1].Title, tasks[2].Title})
}

func TestSortNeitherFlagPreservesOrder(t *testing.T) {
	due := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		taskWith("b", PriorityLow, due, StatusInProgress),
		taskWith("a", PriorityHigh, due, StatusInProgress),
	}

	SortTasks(tasks, SortOptions{})

	assert.Equal(t, "b", tasks[0].Title)
	assert.Equal(t, "a", tasks[1].Title)
}

func TestFilterByStatus(t *testing.T) {
	due := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		taskWith("one", PriorityLow, due, StatusInProgress),
		taskWith("two", PriorityLow, due, StatusCompleted),
		taskWith("three", PriorityLow, due, StatusInProgress),
	}

	got := FilterTasks(tasks, Filter{Status: FilterInProgress})
	assert.Len(t, got, 2)

	got = FilterTasks(tasks, Filter{Status: FilterCompleted})
	assert.Len(t, got, 1)
	assert.Equal(t, "two", got[0].Title)

	got = FilterTasks(tasks, Filter{Status: FilterAll})
	assert.Len(t, got, 3)
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	due := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	tasks := []Task{
		taskWith("Buy Groceries", PriorityLow, due, StatusInProgress),
		taskWith("water plants", PriorityLow, due, StatusInProgress),
	}

	got := FilterTasks(tasks, Filter{Search: "GROC"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Buy Groceries", got[0].Title)

	got = FilterTasks(tasks, Filter{Search: "  plants "})
	assert.Len(t, got, 1)
	assert.Equal(t, "water plants", got[0].Title)
}

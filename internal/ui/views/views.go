package views

import "ischedule/internal/models"

// Navigation messages emitted by the views and routed by the app model.

// SelectedList opens the task view for a list.
type SelectedList struct {
	List models.TaskList
}

// ShowStats opens the statistics view.
type ShowStats struct{}

// BackToLists returns to the list overview.
type BackToLists struct{}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

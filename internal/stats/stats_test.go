package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ischedule/internal/models"
)

func makeTask(listID string, status models.Status) models.Task {
	return models.Task{ListID: listID, Status: status}
}

func TestStatusCounts(t *testing.T) {
	tasks := []models.Task{
		makeTask("a", models.StatusInProgress),
		makeTask("a", models.StatusInProgress),
		makeTask("a", models.StatusCompleted),
		makeTask("b", models.StatusInProgress),
		makeTask("b", models.StatusCompleted),
	}

	c := StatusCounts(tasks)
	assert.Equal(t, 3, c.InProgress)
	assert.Equal(t, 2, c.Completed)
	assert.Equal(t, 5, c.Total())
}

func TestCompletionPercent(t *testing.T) {
	tasks := []models.Task{
		makeTask("a", models.StatusCompleted),
		makeTask("a", models.StatusInProgress),
		makeTask("a", models.StatusInProgress),
		makeTask("a", models.StatusInProgress),
	}

	assert.InDelta(t, 25.0, CompletionPercent(tasks), 0.001)
}

func TestCompletionPercentEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercent(nil))
}

func TestBreakdown(t *testing.T) {
	listA := models.TaskList{ID: "a", Name: "List A"}
	listB := models.TaskList{ID: "b", Name: "List B"}
	tasks := []models.Task{
		makeTask("a", models.StatusInProgress),
		makeTask("a", models.StatusInProgress),
		makeTask("a", models.StatusCompleted),
		makeTask("b", models.StatusInProgress),
		makeTask("b", models.StatusCompleted),
	}

	shares := Breakdown([]models.TaskList{listA, listB}, tasks, models.StatusInProgress)

	assert.Len(t, shares, 2)
	assert.Equal(t, "List A", shares[0].List.Name)
	assert.Equal(t, 2, shares[0].Count)
	assert.InDelta(t, 66.7, shares[0].Percent, 0.05)
	assert.Equal(t, "List B", shares[1].List.Name)
	assert.Equal(t, 1, shares[1].Count)
	assert.InDelta(t, 33.3, shares[1].Percent, 0.05)
}

func TestBreakdownOmitsEmptyLists(t *testing.T) {
	listA := models.TaskList{ID: "a", Name: "List A"}
	listB := models.TaskList{ID: "b", Name: "List B"}
	tasks := []models.Task{
		makeTask("a", models.StatusCompleted),
	}

	shares := Breakdown([]models.TaskList{listA, listB}, tasks, models.StatusCompleted)

	assert.Len(t, shares, 1)
	assert.Equal(t, "List A", shares[0].List.Name)
	assert.InDelta(t, 100.0, shares[0].Percent, 0.001)
}

func TestBreakdownZeroTotal(t *testing.T) {
	listA := models.TaskList{ID: "a", Name: "List A"}

	shares := Breakdown([]models.TaskList{listA}, nil, models.StatusInProgress)

	assert.Empty(t, shares)
}

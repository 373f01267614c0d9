package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ischedule/internal/db"
	"ischedule/internal/models"
)

func getDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database
}

func addTask(t *testing.T, database *db.DB, listID, title string) *models.Task {
	t.Helper()

	task, err := database.CreateTask(models.Task{
		ListID:   listID,
		Title:    title,
		DueDate:  time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local),
		DueTime:  time.Date(2000, time.January, 1, 9, 30, 0, 0, time.Local),
		Priority: models.PriorityMedium,
		Alert:    models.AlertNone,
	})
	require.NoError(t, err)

	return task
}

func TestNewBadPath(t *testing.T) {
	_, err := db.New("/dev/null/nope/test.db")
	assert.Error(t, err)
}

func TestNewIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	database, err := db.New(path)
	require.NoError(t, err)
	_, err = database.CreateList("Chores", models.ColorBlue)
	require.NoError(t, err)
	database.Close()

	// Reopening must not clobber existing data.
	database, err = db.New(path)
	require.NoError(t, err)
	defer database.Close()

	lists, err := database.ListLists()
	require.NoError(t, err)
	assert.Len(t, lists, 1)
	assert.Equal(t, "Chores", lists[0].Name)
}

func TestCreateList(t *testing.T) {
	database := getDB(t)

	list, err := database.CreateList("Assignments", models.ColorRed)
	require.NoError(t, err)

	assert.NotEmpty(t, list.ID)
	assert.Equal(t, "Assignments", list.Name)
	assert.Equal(t, models.ColorRed, list.Color)
	assert.False(t, list.CreatedAt.IsZero())
}

func TestUpdateList(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Assignments", models.ColorRed)
	require.NoError(t, err)

	require.NoError(t, database.UpdateList(list.ID, "Uni Work", models.ColorPurple))

	got, err := database.GetList(list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Uni Work", got.Name)
	assert.Equal(t, models.ColorPurple, got.Color)
}

func TestCreateTask(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Chores", models.ColorGreen)
	require.NoError(t, err)

	task, err := database.CreateTask(models.Task{
		ListID:      list.ID,
		Title:       "water plants",
		Description: "the ones on the balcony",
		DueDate:     time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local),
		DueTime:     time.Date(2000, time.January, 1, 18, 15, 0, 0, time.Local),
		Priority:    models.PriorityHigh,
		Alert:       models.Alert30Minutes,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, list.ID, task.ListID)
	assert.Equal(t, "water plants", task.Title)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, models.StatusInProgress, task.Status, "new tasks start in progress")
	assert.Equal(t, models.Alert30Minutes, task.Alert)
	assert.Equal(t, 2026, task.DueDate.Year())
	assert.Equal(t, 18, task.DueTime.Hour())
	assert.Equal(t, 15, task.DueTime.Minute())
	assert.False(t, task.CreatedAt.IsZero())
}

func TestUpdateTask(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Chores", models.ColorGreen)
	require.NoError(t, err)
	task := addTask(t, database, list.ID, "original")

	task.Title = "renamed"
	task.Priority = models.PriorityLow
	task.Alert = models.Alert1Hour
	require.NoError(t, database.UpdateTask(*task))

	got, err := database.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, models.PriorityLow, got.Priority)
	assert.Equal(t, models.Alert1Hour, got.Alert)
}

func TestSetTaskStatus(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Chores", models.ColorGreen)
	require.NoError(t, err)
	task := addTask(t, database, list.ID, "toggle me")

	require.NoError(t, database.SetTaskStatus(task.ID, models.StatusCompleted))

	got, err := database.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestDeleteListCascades(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Doomed", models.ColorGray)
	require.NoError(t, err)
	task1 := addTask(t, database, list.ID, "one")
	task2 := addTask(t, database, list.ID, "two")

	require.NoError(t, database.DeleteList(list.ID))

	tasks, err := database.ListTasks(list.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = database.GetTask(task1.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = database.GetTask(task2.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteTaskKeepsList(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Sturdy", models.ColorYellow)
	require.NoError(t, err)
	task := addTask(t, database, list.ID, "ephemeral")

	require.NoError(t, database.DeleteTask(task.ID))

	got, err := database.GetList(list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sturdy", got.Name)
}

func TestCountTasksByStatus(t *testing.T) {
	database := getDB(t)
	listA, err := database.CreateList("A", models.ColorBlue)
	require.NoError(t, err)
	listB, err := database.CreateList("B", models.ColorPink)
	require.NoError(t, err)

	addTask(t, database, listA.ID, "a1")
	addTask(t, database, listA.ID, "a2")
	done := addTask(t, database, listB.ID, "b1")
	require.NoError(t, database.SetTaskStatus(done.ID, models.StatusCompleted))

	inProgress, err := database.CountTasksByStatus(models.StatusInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, 2, inProgress)

	completed, err := database.CountTasksByStatus(models.StatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, 1, completed)

	scoped, err := database.CountTasksByStatus(models.StatusInProgress, listB.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, scoped)
}

func TestAllTasks(t *testing.T) {
	database := getDB(t)
	listA, err := database.CreateList("A", models.ColorBlue)
	require.NoError(t, err)
	listB, err := database.CreateList("B", models.ColorPink)
	require.NoError(t, err)

	addTask(t, database, listA.ID, "a1")
	addTask(t, database, listB.ID, "b1")
	addTask(t, database, listB.ID, "b2")

	tasks, err := database.AllTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestListTasksOrderedByDue(t *testing.T) {
	database := getDB(t)
	list, err := database.CreateList("Ordered", models.ColorOrange)
	require.NoError(t, err)

	mk := func(title string, day, hour int) {
		_, err := database.CreateTask(models.Task{
			ListID:   list.ID,
			Title:    title,
			DueDate:  time.Date(2026, time.September, day, 0, 0, 0, 0, time.Local),
			DueTime:  time.Date(2000, time.January, 1, hour, 0, 0, 0, time.Local),
			Priority: models.PriorityMedium,
			Alert:    models.AlertNone,
		})
		require.NoError(t, err)
	}
	mk("late", 3, 9)
	mk("early", 1, 9)
	mk("same day later", 1, 17)

	tasks, err := database.ListTasks(list.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "early", tasks[0].Title)
	assert.Equal(t, "same day later", tasks[1].Title)
	assert.Equal(t, "late", tasks[2].Title)
}

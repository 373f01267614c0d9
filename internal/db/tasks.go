package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"ischedule/internal/models"
)

const taskColumns = `id, list_id, title, description, due_date, due_time, priority, status, alert, created_at`

// CreateTask creates a new task in a list. Status starts as In Progress
// and created_at is stamped by the store.
func (db *DB) CreateTask(t models.Task) (*models.Task, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO tasks (id, list_id, title, description, due_date, due_time, priority, status, alert, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, t.ListID, t.Title, t.Description,
		t.DueDate.Format(dateFormat), t.DueTime.Format(timeFormat),
		string(t.Priority), string(models.StatusInProgress), string(t.Alert), time.Now())
	if err != nil {
		return nil, err
	}

	return db.GetTask(id)
}

// GetTask retrieves a task by ID
func (db *DB) GetTask(id string) (*models.Task, error) {
	row := db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns all tasks for a list ordered by due date then time
func (db *DB) ListTasks(listID string) ([]models.Task, error) {
	rows, err := db.Query(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE list_id = ?
		ORDER BY due_date, due_time
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

// AllTasks returns every task in the store; used by the statistics views
func (db *DB) AllTasks() ([]models.Task, error) {
	rows, err := db.Query(`SELECT ` + taskColumns + ` FROM tasks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

// UpdateTask updates a task's editable fields
func (db *DB) UpdateTask(t models.Task) error {
	_, err := db.Exec(`
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, due_time = ?, priority = ?, alert = ?
		WHERE id = ?
	`, t.Title, t.Description,
		t.DueDate.Format(dateFormat), t.DueTime.Format(timeFormat),
		string(t.Priority), string(t.Alert), t.ID)
	return err
}

// SetTaskStatus sets a task's completion state
func (db *DB) SetTaskStatus(id string, status models.Status) error {
	_, err := db.Exec(`UPDATE tasks SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// DeleteTask deletes a task; its owning list is untouched
func (db *DB) DeleteTask(id string) error {
	_, err := db.Exec("DELETE FROM tasks WHERE id = ?", id)
	return err
}

// CountTasksByStatus returns the number of tasks with the given status,
// across all lists when listID is empty.
func (db *DB) CountTasksByStatus(status models.Status, listID string) (int, error) {
	var count int
	var err error
	if listID == "" {
		err = db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE status = ?`, string(status)).Scan(&count)
	} else {
		err = db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE status = ? AND list_id = ?`,
			string(status), listID).Scan(&count)
	}
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var dueDate, dueTime, priority, status, alert string

	err := row.Scan(&t.ID, &t.ListID, &t.Title, &t.Description,
		&dueDate, &dueTime, &priority, &status, &alert, &t.CreatedAt)
	if err != nil {
		return t, err
	}

	if t.DueDate, err = time.ParseInLocation(dateFormat, dueDate, time.Local); err != nil {
		return t, err
	}
	if t.DueTime, err = time.ParseInLocation(timeFormat, dueTime, time.Local); err != nil {
		return t, err
	}
	t.Priority = models.ParsePriority(priority)
	t.Status = models.ParseStatus(status)
	t.Alert = models.ParseAlertOption(alert)
	return t, nil
}

func collectTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

package db

import (
	"github.com/google/uuid"

	"ischedule/internal/models"
)

// CreateList creates a new task list
func (db *DB) CreateList(name string, color models.Color) (*models.TaskList, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO lists (id, name, color) VALUES (?, ?, ?)
	`, id, name, string(color))
	if err != nil {
		return nil, err
	}

	return db.GetList(id)
}

// GetList retrieves a task list by ID
func (db *DB) GetList(id string) (*models.TaskList, error) {
	l := &models.TaskList{}
	var color string
	err := db.QueryRow(`
		SELECT id, name, color, created_at FROM lists WHERE id = ?
	`, id).Scan(&l.ID, &l.Name, &color, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	l.Color = models.ParseColor(color)
	return l, nil
}

// ListLists returns all task lists ordered by name
func (db *DB) ListLists() ([]models.TaskList, error) {
	rows, err := db.Query(`
		SELECT id, name, color, created_at FROM lists ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []models.TaskList
	for rows.Next() {
		var l models.TaskList
		var color string
		if err := rows.Scan(&l.ID, &l.Name, &color, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Color = models.ParseColor(color)
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// UpdateList updates a list's name and color
func (db *DB) UpdateList(id, name string, color models.Color) error {
	_, err := db.Exec(`
		UPDATE lists SET name = ?, color = ? WHERE id = ?
	`, name, string(color), id)
	return err
}

// DeleteList deletes a list and all its tasks
func (db *DB) DeleteList(id string) error {
	_, err := db.Exec("DELETE FROM lists WHERE id = ?", id)
	return err
}

// ListCount returns the number of lists
func (db *DB) ListCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM lists").Scan(&count)
	return count, err
}

package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/ticklist/ticklist/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository interface {
	Create(task *model.Task) error
	ByID(userID, taskID int64) (*model.Task, error)
	ByOwner(userID int64) ([]*model.Task, error)
	Update(task *model.Task) error
	Delete(userID, taskID int64) error
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *model.Task) error {
	query := `INSERT INTO tasks (user_id, title, status, create_time)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	return r.db.QueryRow(query,
		task.UserID,
		task.Title,
		task.Status,
		task.CreateTime,
	).Scan(&task.ID)
}

func (r *taskRepository) ByID(userID, taskID int64) (*model.Task, error) {
	task := &model.Task{}
	query := `SELECT * FROM tasks WHERE id = $1 AND user_id = $2`

	err := r.db.Get(task, query, taskID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}

	return task, err
}

func (r *taskRepository) ByOwner(userID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	query := `SELECT * FROM tasks WHERE user_id = $1 ORDER BY id ASC`

	err := r.db.Select(&tasks, query, userID)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update mutates title and status only. Scoped by owner: a task belonging to
// another user is reported as not found.
func (r *taskRepository) Update(task *model.Task) error {
	query := `UPDATE tasks SET title = $1, status = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, task.Title, task.Status, task.ID, task.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(userID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, taskID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

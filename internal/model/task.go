package model

import (
	"time"
)

const (
	TaskStatusOpen = 0
	TaskStatusDone = 1
)

type Task struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Title      string    `db:"title"`
	Status     int       `db:"status"`
	CreateTime time.Time `db:"create_time"`
}

func (t *Task) Done() bool {
	return t.Status == TaskStatusDone
}

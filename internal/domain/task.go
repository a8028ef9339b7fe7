package domain

import "time"

// Defaults applied when a create request leaves a field blank.
const (
	DefaultTaskName = "Task"
	DefaultTaskTime = "00:00"
	DateLayout      = "2006-01-02"
)

type Task struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Date      string    `json:"date" db:"date"`
	Time      *string   `json:"time" db:"time"`
	Pomodoro  int       `json:"pomodoro" db:"pomodoro"`
	Done      bool      `json:"done" db:"done"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

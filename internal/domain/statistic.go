package domain

import "time"

// Statistic is one logged chunk of spent time. TaskID is nullable: time can
// be logged without an associated task.
type Statistic struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	TaskID    *int64    `json:"task_id" db:"task_id"`
	SpentTime int64     `json:"spent_time" db:"spent_time"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// StatSummary is one aggregation group: total spent time for a (user, task)
// pair. TaskName is null when the group has no task or the task was deleted.
type StatSummary struct {
	TaskID    *int64  `json:"task_id"`
	TaskName  *string `json:"task_name"`
	SpentTime int64   `json:"spent_time"`
}

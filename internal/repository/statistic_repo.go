package repository

import (
	"context"

	"pomodoro_tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatisticRepository struct {
	db *pgxpool.Pool
}

func NewStatisticRepository(db *pgxpool.Pool) *StatisticRepository {
	return &StatisticRepository{db: db}
}

func (r *StatisticRepository) Insert(ctx context.Context, s *domain.Statistic) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO statistics (user_id, task_id, spent_time)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		s.UserID, s.TaskID, s.SpentTime,
	).Scan(&s.ID, &s.CreatedAt)
}

// SummaryByUser groups the user's statistics by task and sums spent time.
// Rows without a task form their own NULL group. Sums are recomputed on
// every call; nothing is cached.
func (r *StatisticRepository) SummaryByUser(ctx context.Context, userID int64) ([]domain.StatSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.task_id, t.name, SUM(s.spent_time)::bigint
		 FROM statistics s
		 LEFT JOIN tasks t ON s.task_id = t.id
		 WHERE s.user_id = $1
		 GROUP BY s.task_id, t.name`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.StatSummary
	for rows.Next() {
		var sum domain.StatSummary
		if err := rows.Scan(&sum.TaskID, &sum.TaskName, &sum.SpentTime); err != nil {
			return nil, err
		}
		res = append(res, sum)
	}
	return res, rows.Err()
}

// SummaryForTask returns the aggregation group for one (user, task) pair.
// IS NOT DISTINCT FROM makes the NULL task group addressable.
func (r *StatisticRepository) SummaryForTask(ctx context.Context, userID int64, taskID *int64) (*domain.StatSummary, error) {
	var sum domain.StatSummary
	err := r.db.QueryRow(ctx,
		`SELECT s.task_id, t.name, SUM(s.spent_time)::bigint
		 FROM statistics s
		 LEFT JOIN tasks t ON s.task_id = t.id
		 WHERE s.user_id = $1 AND s.task_id IS NOT DISTINCT FROM $2
		 GROUP BY s.task_id, t.name`,
		userID, taskID,
	).Scan(&sum.TaskID, &sum.TaskName, &sum.SpentTime)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

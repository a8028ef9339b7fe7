package handlers

import (
	"pomodoro_tracker/internal/domain"
	"pomodoro_tracker/internal/http/middleware"
	"pomodoro_tracker/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB    *pgxpool.Pool
	Users *repository.UserRepository
	Tasks *repository.TaskRepository
	Stats *repository.StatisticRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:    db,
		Users: repository.NewUserRepository(db),
		Tasks: repository.NewTaskRepository(db),
		Stats: repository.NewStatisticRepository(db),
	}
}

// identity returns the requesting user resolved by the middleware, or nil.
func identity(c *gin.Context) *domain.User {
	user, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil
	}
	return user
}

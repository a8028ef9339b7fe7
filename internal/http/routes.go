package http

import (
	"os"
	"strconv"
	"time"

	"pomodoro_tracker/internal/http/handlers"
	"pomodoro_tracker/internal/http/middleware"
	"pomodoro_tracker/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 10
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	statsRateLimit := 60
	if v := os.Getenv("STATS_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			statsRateLimit = n
		}
	}

	// Health check (no rate limiting)
	r.GET("/health", healthHandler.Health)

	users := repository.NewUserRepository(db)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	api.Use(middleware.CountRequests())
	api.Use(middleware.Identity(users))

	// Tasks
	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.PUT("/tasks", h.EditTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.DELETE("/tasks", h.DeleteAllTasks)

	// Users: self service
	api.GET("/users/", h.Me)
	api.PUT("/users/", h.EditProfile)
	api.PUT("/users/change-login", h.ChangeLogin)
	api.PUT("/users/change-password", h.ChangePassword)
	api.DELETE("/users/", h.DeleteSelf)
	api.GET("/users/is-admin", h.IsAdmin)

	// Users: auth
	api.POST("/users/login", middleware.RedisRateLimit(authRateLimit, authRateWindow), h.Login)
	api.POST("/users/register", h.Register)

	// Users: administration
	api.GET("/users/:id", h.GetUserByID)
	api.PUT("/users/:id", h.EditUserByID)
	api.DELETE("/users/:id", h.DeleteUserByID)

	// Statistics
	api.GET("/statistics", h.ListStatistics)
	api.POST("/statistics", middleware.UserRateLimit(statsRateLimit, time.Minute), h.AddStatistic)
}

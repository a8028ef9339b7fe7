package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pomodoro_tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// taskProjection is the shape returned by the list endpoint.
type taskProjection struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Time     *string `json:"time"`
	Pomodoro int     `json:"pomodoro"`
	Done     bool    `json:"done"`
}

// ListTasks returns the caller's tasks. Unauthenticated callers get an
// empty list, not an error.
func (h *Handler) ListTasks(c *gin.Context) {
	result := []taskProjection{}

	user := identity(c)
	if user == nil {
		c.JSON(http.StatusOK, result)
		return
	}

	tasks, err := h.Tasks.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list tasks"})
		return
	}

	for _, t := range tasks {
		result = append(result, taskProjection{
			ID:       t.ID,
			Name:     t.Name,
			Date:     t.Date,
			Time:     t.Time,
			Pomodoro: t.Pomodoro,
			Done:     t.Done,
		})
	}
	c.JSON(http.StatusOK, result)
}

type CreateTaskRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Pomodoro *int   `json:"pomodoro"`
	Done     bool   `json:"done"`
}

// CreateTask builds a task owned by the caller. A past date and a negative
// pomodoro count are silently ignored and the defaults retained.
// Unauthenticated callers get a no-op.
func (h *Handler) CreateTask(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	var req CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	task := &domain.Task{
		UserID:   user.ID,
		Name:     domain.DefaultTaskName,
		Date:     today(),
		Pomodoro: 0,
		Done:     req.Done,
	}

	if req.Name != "" {
		task.Name = req.Name
	}
	if dateNotInPast(req.Date) {
		task.Date = req.Date
	}
	taskTime := domain.DefaultTaskTime
	if req.Time != "" {
		taskTime = req.Time
	}
	task.Time = &taskTime
	if req.Pomodoro != nil && *req.Pomodoro >= 0 {
		task.Pomodoro = *req.Pomodoro
	}

	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       task.ID,
		"name":     task.Name,
		"date":     task.Date,
		"time":     task.Time,
		"pomodoro": task.Pomodoro,
	})
}

type EditTaskRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Pomodoro *int   `json:"pomodoro"`
	Done     bool   `json:"done"`
}

// EditTask updates a task owned by the caller. A blank name keeps the stored
// one, but a blank time clears the field; that asymmetry with CreateTask is
// intentional and matches the shipped client.
func (h *Handler) EditTask(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	var req EditTaskRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	ctx := c.Request.Context()

	task, err := h.Tasks.GetByID(ctx, req.ID)
	if err != nil || task.UserID != user.ID {
		// not-owned reads the same as missing, on purpose
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	if req.Name != "" {
		task.Name = req.Name
	}
	if dateNotInPast(req.Date) {
		task.Date = req.Date
	}
	if req.Time != "" {
		t := req.Time
		task.Time = &t
	} else {
		task.Time = nil
	}
	if req.Pomodoro != nil && *req.Pomodoro >= 0 {
		task.Pomodoro = *req.Pomodoro
	}
	task.Done = req.Done

	if err := h.Tasks.Update(ctx, task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes one task owned by the caller.
func (h *Handler) DeleteTask(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	ctx := c.Request.Context()

	task, err := h.Tasks.GetByID(ctx, id)
	if err != nil || task.UserID != user.ID {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	if err := h.Tasks.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteAllTasks removes every task system-wide. Admin only.
func (h *Handler) DeleteAllTasks(c *gin.Context) {
	if !identity(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not enough permissions"})
		return
	}

	tasks, err := h.Tasks.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete tasks"})
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func today() string {
	return time.Now().Format(domain.DateLayout)
}

// dateNotInPast reports whether s is a valid date that is today or later.
// Anything else (blank, malformed, past) means the caller's value is ignored.
func dateNotInPast(s string) bool {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return false
	}
	now, _ := time.Parse(domain.DateLayout, today())
	return !d.Before(now)
}

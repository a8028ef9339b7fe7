package handlers

import (
	"net/http"

	"pomodoro_tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListStatistics returns the caller's spent time grouped by task, summed per
// group. Unauthenticated callers get an empty list.
func (h *Handler) ListStatistics(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusOK, []domain.StatSummary{})
		return
	}

	sums, err := h.Stats.SummaryByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load statistics"})
		return
	}
	if sums == nil {
		sums = []domain.StatSummary{}
	}

	c.JSON(http.StatusOK, sums)
}

type AddStatisticRequest struct {
	SpentTime int64  `json:"spentTime"`
	TaskID    *int64 `json:"taskId"`
}

// AddStatistic records spent time and returns the fresh sum for the
// (user, task) group. Without an identity nothing is persisted; the caller
// gets a synthetic entry echoing their submission instead.
func (h *Handler) AddStatistic(c *gin.Context) {
	var req AddStatisticRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	user := identity(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{
			"task_id":    nil,
			"task_name":  domain.DefaultTaskName,
			"spent_time": req.SpentTime,
		})
		return
	}

	ctx := c.Request.Context()

	stat := &domain.Statistic{
		UserID:    user.ID,
		TaskID:    req.TaskID,
		SpentTime: req.SpentTime,
	}
	if err := h.Stats.Insert(ctx, stat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add statistic"})
		return
	}

	sum, err := h.Stats.SummaryForTask(ctx, user.ID, stat.TaskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load statistics"})
		return
	}

	c.JSON(http.StatusOK, sum)
}

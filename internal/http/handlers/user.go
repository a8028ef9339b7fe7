package handlers

import (
	"net/http"
	"strconv"

	"pomodoro_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Me returns the requesting user's profile (username only).
func (h *Handler) Me(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

type EditProfileRequest struct {
	Username string `json:"username"`
}

// EditProfile sets the requesting user's display name.
func (h *Handler) EditProfile(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req EditProfileRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	updated, err := h.Users.SetUsername(c.Request.Context(), user.ID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

type ChangeLoginRequest struct {
	Login string `json:"login"`
}

// ChangeLogin sets the requesting user's login. Uniqueness is not re-checked
// here; a duplicate surfaces as a generic failure from the unique index.
func (h *Handler) ChangeLogin(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req ChangeLoginRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	updated, err := h.Users.SetLogin(c.Request.Context(), user.ID, req.Login)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ChangePassword re-verifies the current password before accepting a new one.
func (h *Handler) ChangePassword(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	if !service.CheckPassword(user.HashedPassword, req.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong password"})
		return
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	updated, err := h.Users.SetPassword(c.Request.Context(), user.ID, hashed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSelf removes the requesting user's account together with their tasks
// and statistics.
func (h *Handler) DeleteSelf(c *gin.Context) {
	user := identity(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	deleted, err := h.Users.Delete(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// GetUserByID returns any user record. Admin only.
func (h *Handler) GetUserByID(c *gin.Context) {
	if !identity(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not enough permissions"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type EditUserByIDRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// EditUserByID sets a user's display name and role verbatim. Admin only.
// The role string is written as-is, without checking it against the two
// known roles.
func (h *Handler) EditUserByID(c *gin.Context) {
	if !identity(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not enough permissions"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var req EditUserByIDRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	updated, err := h.Users.UpdateByID(ctx, id, req.Username, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteUserByID removes any user with cascade. Admin only.
func (h *Handler) DeleteUserByID(c *gin.Context) {
	if !identity(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not enough permissions"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	deleted, err := h.Users.Delete(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, deleted)
}

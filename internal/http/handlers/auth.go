package handlers

import (
	"errors"
	"net/http"

	"pomodoro_tracker/internal/domain"
	"pomodoro_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login checks the credentials and returns a signed access token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	user, err := h.Users.GetByLogin(c.Request.Context(), req.Login)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if !service.CheckPassword(user.HashedPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong password"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

type RegisterRequest struct {
	Username string `json:"username"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new account. It is an open endpoint, but requesting the
// admin role is allowed only when the caller is already an admin.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}

	if req.Username == "" || req.Login == "" || req.Password == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not all data provided"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Users.GetByLogin(ctx, req.Login); !errors.Is(err, pgx.ErrNoRows) {
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
		}
		return
	}

	if req.Role == domain.RoleAdmin && !identity(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not enough permissions"})
		return
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
		return
	}

	user := &domain.User{
		Username:       req.Username,
		Login:          req.Login,
		HashedPassword: hashed,
		Role:           req.Role,
	}
	if err := h.Users.Create(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// IsAdmin reports whether the requesting user holds the admin role.
func (h *Handler) IsAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, identity(c).IsAdmin())
}

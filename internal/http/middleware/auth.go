package middleware

import (
	"strings"

	"pomodoro_tracker/internal/domain"
	"pomodoro_tracker/internal/repository"
	"pomodoro_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the resolved *domain.User.
const IdentityKey = "identity"

// Identity resolves the bearer token to a user record and stores it in the
// gin context. It never aborts: a missing header, a bad token and an unknown
// user id all leave the request without an identity, and every route decides
// its own unauthenticated behavior.
func Identity(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(IdentityKey, user)
		c.Next()
	}
}

// IdentityFrom returns the user resolved by the Identity middleware, if any.
func IdentityFrom(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pomodoro_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Requests without a resolvable token must pass through the Identity
// middleware with no identity set and nothing hitting the database (the
// repository is never consulted before the token parses).
func TestIdentityNoToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service.InitJWT("test-secret")

	r := gin.New()
	r.Use(Identity(nil))
	r.GET("/probe", func(c *gin.Context) {
		if _, ok := IdentityFrom(c); ok {
			c.JSON(http.StatusOK, gin.H{"identity": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"identity": false})
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	badToken := func() string {
		service.InitJWT("another-secret")
		tok, err := service.GenerateJWT(1)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		service.InitJWT("test-secret")
		return tok
	}()

	cases := []struct {
		name   string
		header string
	}{
		{"absent header", ""},
		{"not bearer", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"malformed token", "Bearer not-a-jwt"},
		{"wrong signature", "Bearer " + badToken},
	}

	for _, tc := range cases {
		req, _ := http.NewRequest("GET", srv.URL+"/probe", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", tc.name, res.StatusCode)
		}
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		if got := string(body); got != `{"identity":false}` {
			t.Fatalf("%s: expected no identity, got %s", tc.name, got)
		}
	}
}

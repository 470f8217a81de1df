package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"realty_backend/internal/logger"
	"realty_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard)
	os.Exit(m.Run())
}

// stubAuthenticator отдает пользователя по заранее известному токену
type stubAuthenticator struct {
	users map[string]*models.User
	panic bool
	calls int
}

func (s *stubAuthenticator) Authenticate(_ context.Context, _ *gorm.DB, token string) (*models.User, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	user, ok := s.users[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return user, nil
}

func newGuardedRouter(auth Authenticator, roles ...models.UserRole) *gin.Engine {
	guard := NewGuard(auth, nil)
	r := gin.New()
	r.GET("/resource", guard.Require(roles...), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user.ID})
	})
	return r
}

func doRequest(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_OpenRouteSkipsAuthentication(t *testing.T) {
	auth := &stubAuthenticator{}
	r := newGuardedRouter(auth)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
	assert.Zero(t, auth.calls)
}

func TestGuard_Decisions(t *testing.T) {
	buyer := &models.User{BaseModel: models.BaseModel{ID: 1}, Role: models.UserRoleBuyer}
	realtor := &models.User{BaseModel: models.BaseModel{ID: 2}, Role: models.UserRoleRealtor}
	auth := &stubAuthenticator{users: map[string]*models.User{
		"buyer-token":   buyer,
		"realtor-token": realtor,
		"ghost-token":   nil,
	}}
	r := newGuardedRouter(auth, models.UserRoleRealtor, models.UserRoleAdmin)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer   ", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"user vanished", "Bearer ghost-token", http.StatusUnauthorized},
		{"role not allowed", "Bearer buyer-token", http.StatusUnauthorized},
		{"allowed role", "Bearer realtor-token", http.StatusOK},
		{"lowercase scheme", "bearer realtor-token", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, tc.header)
			require.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"user":2}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message":"Unauthorized"`)
			}
		})
	}
}

func TestGuard_PanicIsDenied(t *testing.T) {
	auth := &stubAuthenticator{panic: true}
	r := newGuardedRouter(auth, models.AllUserRoles...)

	w := doRequest(r, "Bearer anything")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 1, auth.calls)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})

	const known = "0b8f1c1e-4f55-4a8e-9a65-5a4a4c8f2b11"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", known)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, known, w.Body.String())
	assert.Equal(t, known, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
	assert.Len(t, w.Body.String(), 36)
}

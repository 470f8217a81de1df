package middleware

import (
	"context"
	"fmt"
	"strings"

	"realty_backend/internal/logger"
	"realty_backend/internal/models"
	"realty_backend/pkg/apperrors"
	"realty_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Authenticator проверяет токен и возвращает пользователя
type Authenticator interface {
	Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error)
}

// Guard - единая точка проверки ролей для всех маршрутов
type Guard struct {
	auth Authenticator
	db   *gorm.DB
}

func NewGuard(auth Authenticator, db *gorm.DB) *Guard {
	return &Guard{auth: auth, db: db}
}

// Require пропускает запрос, только если роль пользователя входит в roles.
// Пустой список ролей - открытый маршрут. Любая ошибка или паника означает отказ.
func (g *Guard) Require(roles ...models.UserRole) gin.HandlerFunc {
	if len(roles) == 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user, err := g.authorize(c, roleSet)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Access denied",
				"path", c.Request.URL.Path,
				"reason", err.Error(),
			)
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		c.Set(string(contextkeys.UserContextKey), user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

func (g *Guard) authorize(c *gin.Context, roleSet map[models.UserRole]bool) (user *models.User, err error) {
	defer func() {
		if r := recover(); r != nil {
			user, err = nil, fmt.Errorf("guard panic: %v", r)
		}
	}()

	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil, fmt.Errorf("missing bearer token")
	}

	user, err = g.auth.Authenticate(c.Request.Context(), g.requestDB(c), token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if !roleSet[user.Role] {
		return nil, fmt.Errorf("role %s is not allowed", user.Role)
	}
	return user, nil
}

// requestDB - сессия из DBMiddleware, если есть, иначе пул
func (g *Guard) requestDB(c *gin.Context) *gorm.DB {
	if val, ok := c.Get(string(contextkeys.DBContextKey)); ok {
		if db, ok := val.(*gorm.DB); ok && db != nil {
			return db
		}
	}
	if g.db == nil {
		return nil
	}
	return g.db.WithContext(c.Request.Context())
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// CurrentUser извлекает пользователя, сохраненного Guard'ом
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(string(contextkeys.UserContextKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok && user != nil
}

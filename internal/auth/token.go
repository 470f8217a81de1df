package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"realty_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - токен не подписан нашим ключом, поврежден или истек
var ErrInvalidToken = errors.New("invalid token")

// Claims - полезная нагрузка токена
type Claims struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет HS256 токены.
// Ключ подписи берется из конфигурации один раз при создании.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

type TokenOption func(*TokenService)

// WithClock подменяет источник времени (используется в тестах)
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(cfg config.AuthConfig, opts ...TokenOption) *TokenService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = config.TokenTTL
	}
	s := &TokenService{
		key: []byte(cfg.TokenKey),
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueToken выпускает токен для пользователя
func (s *TokenService) IssueToken(userID uint, name string) (string, error) {
	now := s.now()
	claims := Claims{
		ID:   userID,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken проверяет подпись и срок действия токена.
// Токен перестает быть валидным ровно в момент exp.
func (s *TokenService) VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !s.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}
	if claims.ID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL возвращает время жизни выпускаемых токенов
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

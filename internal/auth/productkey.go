package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"realty_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// ProductKeyIssuer выпускает и проверяет ключи продукта для привилегированных ролей.
// Ключ - это bcrypt хеш от "<email>-<ROLE>-<секрет>".
type ProductKeyIssuer struct {
	secret string
}

func NewProductKeyIssuer(secret string) *ProductKeyIssuer {
	return &ProductKeyIssuer{secret: secret}
}

// material возвращает строку, от которой считается bcrypt.
// bcrypt учитывает только первые 72 байта, поэтому сначала берем sha256.
func (p *ProductKeyIssuer) material(email string, role models.UserRole) []byte {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%s", strings.ToLower(strings.TrimSpace(email)), role, p.secret)))
	return []byte(hex.EncodeToString(sum[:]))
}

// IssueProductKey выпускает новый ключ для пары email/роль
func (p *ProductKeyIssuer) IssueProductKey(email string, role models.UserRole) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(p.material(email, role), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash product key: %w", err)
	}
	return string(hash), nil
}

// VerifyProductKey проверяет, что ключ был выпущен для этой пары email/роль
func (p *ProductKeyIssuer) VerifyProductKey(candidate, email string, role models.UserRole) bool {
	if candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(candidate), p.material(email, role)) == nil
}

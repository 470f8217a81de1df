package dto

import (
	"realty_backend/internal/models"
)

// SignupRequest - запрос регистрации. Роль приходит из пути /auth/signup/:userType
type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required,is-phone"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=5,is-bcrypt-len"`
	ProductKey string `json:"productKey,omitempty"`
}

// SigninRequest - запрос входа
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProductKeyRequest - запрос на выпуск ключа продукта
type ProductKeyRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	UserType models.UserRole `json:"userType" validate:"required,is-user-role"`
}

// TokenResponse - ответ signup/signin
type TokenResponse struct {
	Token string `json:"token"`
}

// ProductKeyResponse - ответ /auth/key
type ProductKeyResponse struct {
	ProductKey string `json:"productKey"`
}

// UserResponse - пользователь без хеша пароля
type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`
	Role  models.UserRole `json:"role"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

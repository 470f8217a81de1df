package services

import (
	"context"
	"errors"
	"strings"

	"realty_backend/internal/auth"
	"realty_backend/internal/logger"
	"realty_backend/internal/models"
	"realty_backend/internal/repositories"
	"realty_backend/internal/services/dto"
	"realty_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, db *gorm.DB, role models.UserRole, req *dto.SignupRequest) (*dto.TokenResponse, error)
	Signin(ctx context.Context, db *gorm.DB, req *dto.SigninRequest) (*dto.TokenResponse, error)
	IssueProductKey(ctx context.Context, req *dto.ProductKeyRequest) (*dto.ProductKeyResponse, error)
	Me(ctx context.Context, db *gorm.DB, userID uint) (*dto.UserResponse, error)

	// Authenticate проверяет токен и загружает пользователя. Используется Guard'ом.
	Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	tokens      *auth.TokenService
	productKeys *auth.ProductKeyIssuer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	productKeys *auth.ProductKeyIssuer,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		tokens:      tokens,
		productKeys: productKeys,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup - регистрация. Для REALTOR и ADMIN нужен ключ продукта, выпущенный на этот email.
func (s *authService) Signup(ctx context.Context, db *gorm.DB, role models.UserRole, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	if !role.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"userType": "Must be one of: BUYER, REALTOR, ADMIN"})
	}

	email := normalizeEmail(req.Email)

	if auth.RequiresProductKey(role) && !s.productKeys.VerifyProductKey(req.ProductKey, email, role) {
		logger.CtxWarn(ctx, "Signup rejected: invalid product key", "role", role)
		return nil, apperrors.ErrInvalidProductKey
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.ValidationError(map[string]string{"password": "Must be at most 72 bytes long"})
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User signed up", "user_id", user.ID, "role", user.Role)

	return s.issue(user)
}

// Signin - вход по email и паролю
func (s *authService) Signin(ctx context.Context, db *gorm.DB, req *dto.SigninRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownEmail
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// IssueProductKey выпускает ключ для регистрации с привилегированной ролью
func (s *authService) IssueProductKey(ctx context.Context, req *dto.ProductKeyRequest) (*dto.ProductKeyResponse, error) {
	key, err := s.productKeys.IssueProductKey(normalizeEmail(req.Email), req.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Product key issued", "role", req.UserType)
	return &dto.ProductKeyResponse{ProductKey: key}, nil
}

func (s *authService) Me(ctx context.Context, db *gorm.DB, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error) {
	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized.WithError(err)
	}

	user, err := s.userRepo.FindByID(db.WithContext(ctx), claims.ID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized.WithError(err)
	}
	return user, nil
}

func (s *authService) issue(user *models.User) (*dto.TokenResponse, error) {
	token, err := s.tokens.IssueToken(user.ID, user.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{Token: token}, nil
}

package handlers

import (
	"net/http"
	"strings"

	"realty_backend/internal/models"
	"realty_backend/internal/services"
	"realty_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description REALTOR и ADMIN регистрируются только с ключом продукта, выпущенным на их email
// @Tags auth
// @Accept json
// @Produce json
// @Param userType path string true "BUYER | REALTOR | ADMIN"
// @Param body body dto.SignupRequest true "Данные пользователя"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse "Нет или неверный ключ продукта"
// @Failure 409 {object} apperrors.ErrorResponse "Email уже занят"
// @Router /auth/signup/{userType} [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	role := models.UserRole(strings.ToUpper(c.Param("userType")))

	resp, err := h.authService.Signup(c.Request.Context(), h.GetDB(c), role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Signin godoc
// @Summary Вход
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SigninRequest true "Email и пароль"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} apperrors.ErrorResponse "Неверный пароль"
// @Failure 409 {object} apperrors.ErrorResponse "Email не зарегистрирован"
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Signin(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateProductKey godoc
// @Summary Выпустить ключ продукта
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ProductKeyRequest true "Email и роль"
// @Success 200 {object} dto.ProductKeyResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /auth/key [post]
func (h *AuthHandler) GenerateProductKey(c *gin.Context) {
	var req dto.ProductKeyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.IssueProductKey(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.authService.Me(c.Request.Context(), h.GetDB(c), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

package apperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func render(t *testing.T, debug bool, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler := &GinErrorHandler{Debug: debug}
	handler.HandleGinError(c, err)
	return w
}

func TestHandleGinError_AppError(t *testing.T) {
	w := render(t, false, ErrNotListingOwner)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_LISTING_OWNER","domain":"listing","message":"Only the listing's realtor can do this"}}`, w.Body.String())
}

func TestHandleGinError_ValidationDetails(t *testing.T) {
	w := render(t, false, ValidationError(map[string]string{"phone": "phone must be a valid number"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"details":{"phone":"phone must be a valid number"}`)
}

func TestHandleGinError_HidesInternalsOutsideDebug(t *testing.T) {
	cause := errors.New("pq: connection refused")

	w := render(t, false, cause)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = render(t, true, cause)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestWithDetailsDoesNotMutateShared(t *testing.T) {
	withDetails := ErrFileTooLarge.WithDetails("max 2MB")
	assert.Nil(t, ErrFileTooLarge.Details)
	assert.True(t, errors.Is(withDetails, ErrFileTooLarge))
	assert.False(t, errors.Is(withDetails, ErrInvalidFileType))
}

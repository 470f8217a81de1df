package handlers

import (
	"net/http"

	"realty_backend/internal/services"
	"realty_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// SearchListings godoc
// @Summary Поиск объявлений
// @Description Все фильтры объединяются через AND. Пустой результат - 404.
// @Tags homes
// @Produce json
// @Param city query string false "Город"
// @Param propertyType query string false "RESIDENTIAL | CONDO"
// @Param minPrice query number false "Минимальная цена (включительно)"
// @Param maxPrice query number false "Максимальная цена (включительно)"
// @Success 200 {array} dto.ListingResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /home [get]
func (h *ListingHandler) SearchListings(c *gin.Context) {
	var query dto.SearchListingsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	listings, err := h.listingService.Search(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GetListing godoc
// @Summary Объявление по ID
// @Tags homes
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} dto.ListingResponse
// @Router /home/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	listing, err := h.listingService.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing godoc
// @Summary Создать объявление
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateListingRequest true "Объявление и фотографии"
// @Success 201 {object} dto.ListingResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /home [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), h.GetDB(c), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// UpdateListing godoc
// @Summary Изменить объявление
// @Description Только владелец объявления. Обновляются только переданные поля.
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param body body dto.UpdateListingRequest true "Поля для обновления"
// @Success 200 {object} dto.ListingResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /home/{id} [put]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), h.GetDB(c), user, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// DeleteListing godoc
// @Summary Удалить объявление
// @Description Удаляет фотографии, сообщения и само объявление. Только владелец.
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 200 {object} dto.StatusResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /home/{id} [delete]
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), h.GetDB(c), user, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted"})
}

// SendInquiry godoc
// @Summary Написать риелтору
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param body body dto.InquiryRequest true "Сообщение"
// @Success 201 {object} dto.InquiryResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /home/inquire/{id} [post]
func (h *ListingHandler) SendInquiry(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.InquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.listingService.SendInquiry(c.Request.Context(), h.GetDB(c), user, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GetMessages godoc
// @Summary Сообщения по объявлению
// @Description Только владелец объявления
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /home/{id}/messages [get]
func (h *ListingHandler) GetMessages(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	messages, err := h.listingService.GetMessages(c.Request.Context(), h.GetDB(c), user, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

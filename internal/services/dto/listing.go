package dto

import (
	"time"

	"realty_backend/internal/models"
)

// ============================================
// REQUEST STRUCTURES
// ============================================

// SearchListingsQuery - фильтры поиска, все необязательные
type SearchListingsQuery struct {
	City         string              `form:"city"`
	PropertyType models.PropertyType `form:"propertyType" validate:"omitempty,is-property-type"`
	MinPrice     *float64            `form:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice     *float64            `form:"maxPrice" validate:"omitempty,gte=0"`
}

type ImageInput struct {
	URL string `json:"url" validate:"required"`
}

// CreateListingRequest - поля в snake_case как у существующих клиентов
type CreateListingRequest struct {
	Address           string              `json:"address" validate:"required"`
	NumberOfBedrooms  int                 `json:"number_of_bedrooms" validate:"gte=0"`
	NumberOfBathrooms float64             `json:"number_of_bathrooms" validate:"gte=0"`
	City              string              `json:"city" validate:"required"`
	Price             float64             `json:"price" validate:"gt=0"`
	LandSize          float64             `json:"land_size" validate:"gt=0"`
	PropertyType      models.PropertyType `json:"propertyType" validate:"required,is-property-type"`
	Images            []ImageInput        `json:"images" validate:"dive"`
}

// UpdateListingRequest - частичное обновление, nil поля не трогаются
type UpdateListingRequest struct {
	Address           *string              `json:"address" validate:"omitempty,min=1"`
	NumberOfBedrooms  *int                 `json:"number_of_bedrooms" validate:"omitempty,gte=0"`
	NumberOfBathrooms *float64             `json:"number_of_bathrooms" validate:"omitempty,gte=0"`
	City              *string              `json:"city" validate:"omitempty,min=1"`
	Price             *float64             `json:"price" validate:"omitempty,gt=0"`
	LandSize          *float64             `json:"land_size" validate:"omitempty,gt=0"`
	PropertyType      *models.PropertyType `json:"propertyType" validate:"omitempty,is-property-type"`
}

// ToUpdates собирает карту колонок для gorm Updates
func (r *UpdateListingRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.NumberOfBedrooms != nil {
		updates["number_of_bedrooms"] = *r.NumberOfBedrooms
	}
	if r.NumberOfBathrooms != nil {
		updates["number_of_bathrooms"] = *r.NumberOfBathrooms
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.LandSize != nil {
		updates["land_size"] = *r.LandSize
	}
	if r.PropertyType != nil {
		updates["property_type"] = *r.PropertyType
	}
	return updates
}

// InquiryRequest - сообщение покупателя риелтору
type InquiryRequest struct {
	Message string `json:"message" validate:"required"`
}

// ============================================
// RESPONSE STRUCTURES
// ============================================

// ListingResponse - объявление с плоским списком URL картинок
type ListingResponse struct {
	ID                uint                `json:"id"`
	Address           string              `json:"address"`
	Slug              string              `json:"slug"`
	NumberOfBedrooms  int                 `json:"numberOfBedrooms"`
	NumberOfBathrooms float64             `json:"numberOfBathrooms"`
	City              string              `json:"city"`
	ListedDate        time.Time           `json:"listedDate"`
	Price             float64             `json:"price"`
	LandSize          float64             `json:"landSize"`
	PropertyType      models.PropertyType `json:"propertyType"`
	Images            []string            `json:"images"`
}

func NewListingResponse(home *models.Home) *ListingResponse {
	resp := &ListingResponse{Images: []string{}}
	if home == nil {
		return resp
	}

	resp.ID = home.ID
	resp.Address = home.Address
	resp.Slug = home.Slug
	resp.NumberOfBedrooms = home.NumberOfBedrooms
	resp.NumberOfBathrooms = home.NumberOfBathrooms
	resp.City = home.City
	resp.ListedDate = home.ListedDate
	resp.Price = home.Price
	resp.LandSize = home.LandSize
	resp.PropertyType = home.PropertyType
	for _, img := range home.Images {
		resp.Images = append(resp.Images, img.URL)
	}
	return resp
}

// BuyerResponse - контакты покупателя в списке сообщений
type BuyerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string        `json:"message"`
	Buyer   BuyerResponse `json:"buyer"`
}

func NewMessageResponse(msg *models.Message) *MessageResponse {
	resp := &MessageResponse{Message: msg.Message}
	if msg.Buyer != nil {
		resp.Buyer = BuyerResponse{
			Name:  msg.Buyer.Name,
			Phone: msg.Buyer.Phone,
			Email: msg.Buyer.Email,
		}
	}
	return resp
}

// InquiryResponse - сохраненное сообщение
type InquiryResponse struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	HomeID    uint      `json:"homeId"`
	BuyerID   uint      `json:"buyerId"`
	RealtorID uint      `json:"realtorId"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewInquiryResponse(msg *models.Message) *InquiryResponse {
	return &InquiryResponse{
		ID:        msg.ID,
		Message:   msg.Message,
		HomeID:    msg.HomeID,
		BuyerID:   msg.BuyerID,
		RealtorID: msg.RealtorID,
		CreatedAt: msg.CreatedAt,
	}
}

// StatusResponse - ответ операций без тела
type StatusResponse struct {
	Status string `json:"status"`
}

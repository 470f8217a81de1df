package services

import (
	"context"
	"strings"
	"time"

	"realty_backend/internal/auth"
	"realty_backend/internal/logger"
	"realty_backend/internal/models"
	"realty_backend/internal/repositories"
	"realty_backend/internal/services/dto"
	"realty_backend/pkg/apperrors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type ListingService interface {
	Search(ctx context.Context, db *gorm.DB, query *dto.SearchListingsQuery) ([]*dto.ListingResponse, error)
	GetByID(ctx context.Context, db *gorm.DB, id uint) (*dto.ListingResponse, error)
	Create(ctx context.Context, db *gorm.DB, realtor *models.User, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	Update(ctx context.Context, db *gorm.DB, actor *models.User, id uint, req *dto.UpdateListingRequest) (*dto.ListingResponse, error)
	Delete(ctx context.Context, db *gorm.DB, actor *models.User, id uint) error
	SendInquiry(ctx context.Context, db *gorm.DB, buyer *models.User, id uint, req *dto.InquiryRequest) (*dto.InquiryResponse, error)
	GetMessages(ctx context.Context, db *gorm.DB, actor *models.User, id uint) ([]*dto.MessageResponse, error)
}

type listingService struct {
	homeRepo     repositories.HomeRepository
	messageRepo  repositories.MessageRepository
	userRepo     repositories.UserRepository
	notification NotificationService
	now          func() time.Time
}

func NewListingService(
	homeRepo repositories.HomeRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notification NotificationService,
) ListingService {
	return &listingService{
		homeRepo:     homeRepo,
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		notification: notification,
		now:          time.Now,
	}
}

func listingSlug(address, city string) string {
	return slug.Make(strings.TrimSpace(address + " " + city))
}

// Search - все условия объединяются через AND, границы цены включительные.
// Пустой результат считается ошибкой 404, клиенты на это рассчитывают.
func (s *listingService) Search(ctx context.Context, db *gorm.DB, query *dto.SearchListingsQuery) ([]*dto.ListingResponse, error) {
	filter := repositories.HomeFilter{
		City:         strings.TrimSpace(query.City),
		PropertyType: query.PropertyType,
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
	}

	homes, err := s.homeRepo.Search(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(homes) == 0 {
		return nil, apperrors.ErrNoListingsFound
	}

	result := make([]*dto.ListingResponse, 0, len(homes))
	for i := range homes {
		result = append(result, dto.NewListingResponse(&homes[i]))
	}
	return result, nil
}

// GetByID для несуществующего объявления возвращает пустой ответ, а не 404
func (s *listingService) GetByID(ctx context.Context, db *gorm.DB, id uint) (*dto.ListingResponse, error) {
	home, err := s.homeRepo.FindByIDWithImages(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHomeNotFound) {
			logger.CtxDebug(ctx, "Listing not found, returning empty body", "listing_id", id)
			return dto.NewListingResponse(nil), nil
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListingResponse(home), nil
}

// Create сохраняет объявление и его фотографии в одной транзакции
func (s *listingService) Create(ctx context.Context, db *gorm.DB, realtor *models.User, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	home := &models.Home{
		Address:           strings.TrimSpace(req.Address),
		Slug:              listingSlug(req.Address, req.City),
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		City:              strings.TrimSpace(req.City),
		ListedDate:        s.now().UTC(),
		Price:             req.Price,
		LandSize:          req.LandSize,
		PropertyType:      req.PropertyType,
		RealtorID:         realtor.ID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.homeRepo.Create(tx, home); err != nil {
			return err
		}

		images := make([]models.Image, 0, len(req.Images))
		for _, img := range req.Images {
			images = append(images, models.Image{URL: img.URL, HomeID: home.ID})
		}
		if err := s.homeRepo.CreateImages(tx, images); err != nil {
			return err
		}
		home.Images = images
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Listing created", "listing_id", home.ID, "images", len(home.Images))
	return dto.NewListingResponse(home), nil
}

// loadOwned находит объявление и проверяет, что actor - его владелец
func (s *listingService) loadOwned(ctx context.Context, db *gorm.DB, actor *models.User, id uint) (*models.Home, error) {
	home, err := s.homeRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHomeNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanManageListing(actor, home) {
		logger.CtxWarn(ctx, "Listing access denied: not the owner", "listing_id", id, "owner_id", home.RealtorID)
		return nil, apperrors.ErrNotListingOwner
	}
	return home, nil
}

func (s *listingService) Update(ctx context.Context, db *gorm.DB, actor *models.User, id uint, req *dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	home, err := s.loadOwned(ctx, db, actor, id)
	if err != nil {
		return nil, err
	}

	updates := req.ToUpdates()
	if req.Address != nil || req.City != nil {
		address, city := home.Address, home.City
		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		updates["slug"] = listingSlug(address, city)
	}

	if err := s.homeRepo.Update(db, id, updates); err != nil {
		if apperrors.Is(err, repositories.ErrHomeNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.homeRepo.FindByIDWithImages(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Listing updated", "listing_id", id, "fields", len(updates))
	return dto.NewListingResponse(updated), nil
}

// Delete удаляет фотографии, сообщения и само объявление в одной транзакции.
// Фотографии удаляются до проверки существования, откат вернет их при отказе.
func (s *listingService) Delete(ctx context.Context, db *gorm.DB, actor *models.User, id uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.homeRepo.DeleteImagesByHome(tx, id); err != nil {
			return apperrors.InternalError(err)
		}

		if _, err := s.loadOwned(ctx, tx, actor, id); err != nil {
			return err
		}

		if err := s.messageRepo.DeleteByHome(tx, id); err != nil {
			return apperrors.InternalError(err)
		}

		if err := s.homeRepo.Delete(tx, id); err != nil {
			if apperrors.Is(err, repositories.ErrHomeNotFound) {
				return apperrors.ErrListingNotFound
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "Listing deleted", "listing_id", id)
	return nil
}

// SendInquiry сохраняет сообщение покупателя. realtor_id фиксируется на момент отправки.
func (s *listingService) SendInquiry(ctx context.Context, db *gorm.DB, buyer *models.User, id uint, req *dto.InquiryRequest) (*dto.InquiryResponse, error) {
	home, err := s.homeRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHomeNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	msg := &models.Message{
		Message:   req.Message,
		HomeID:    home.ID,
		BuyerID:   buyer.ID,
		RealtorID: home.RealtorID,
	}
	if err := s.messageRepo.Create(db, msg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyRealtor(ctx, db, home, buyer, msg)

	return dto.NewInquiryResponse(msg), nil
}

// notifyRealtor не влияет на результат запроса, ошибки только логируются
func (s *listingService) notifyRealtor(ctx context.Context, db *gorm.DB, home *models.Home, buyer *models.User, msg *models.Message) {
	if s.notification == nil {
		return
	}

	realtor, err := s.userRepo.FindByID(db, msg.RealtorID)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load realtor for inquiry notification", err, "realtor_id", msg.RealtorID)
		return
	}

	notice := &dto.InquiryNotification{
		RealtorName:  realtor.Name,
		RealtorEmail: realtor.Email,
		BuyerName:    buyer.Name,
		BuyerEmail:   buyer.Email,
		BuyerPhone:   buyer.Phone,
		Address:      home.Address,
		City:         home.City,
		Message:      msg.Message,
	}
	if err := s.notification.NotifyInquiry(ctx, notice); err != nil {
		logger.CtxWithError(ctx, "Failed to send inquiry notification", err, "message_id", msg.ID)
	}
}

func (s *listingService) GetMessages(ctx context.Context, db *gorm.DB, actor *models.User, id uint) ([]*dto.MessageResponse, error) {
	if _, err := s.loadOwned(ctx, db, actor, id); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByHomeWithBuyer(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		result = append(result, dto.NewMessageResponse(&messages[i]))
	}
	return result, nil
}

package repositories

import (
	"errors"

	"realty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrHomeNotFound = errors.New("home not found")

// HomeFilter - условия поиска объявлений. Пустые поля не участвуют в запросе.
type HomeFilter struct {
	City         string
	PropertyType models.PropertyType
	MinPrice     *float64
	MaxPrice     *float64
}

type HomeRepository interface {
	Search(db *gorm.DB, filter HomeFilter) ([]models.Home, error)
	FindByID(db *gorm.DB, id uint) (*models.Home, error)
	FindByIDWithImages(db *gorm.DB, id uint) (*models.Home, error)
	Create(db *gorm.DB, home *models.Home) error
	CreateImages(db *gorm.DB, images []models.Image) error
	Update(db *gorm.DB, id uint, updates map[string]interface{}) error
	DeleteImagesByHome(db *gorm.DB, homeID uint) error
	Delete(db *gorm.DB, id uint) error
}

type HomeRepositoryImpl struct{}

func NewHomeRepository() HomeRepository {
	return &HomeRepositoryImpl{}
}

func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("images.id ASC")
	})
}

func (r *HomeRepositoryImpl) Search(db *gorm.DB, filter HomeFilter) ([]models.Home, error) {
	query := withImages(db.Model(&models.Home{}))

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var homes []models.Home
	if err := query.Order("homes.id ASC").Find(&homes).Error; err != nil {
		return nil, err
	}
	return homes, nil
}

func (r *HomeRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Home, error) {
	var home models.Home
	if err := db.First(&home, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	return &home, nil
}

func (r *HomeRepositoryImpl) FindByIDWithImages(db *gorm.DB, id uint) (*models.Home, error) {
	var home models.Home
	if err := withImages(db).First(&home, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	return &home, nil
}

// Create сохраняет только само объявление, картинки пишутся отдельно через CreateImages
func (r *HomeRepositoryImpl) Create(db *gorm.DB, home *models.Home) error {
	return db.Omit("Images", "Realtor").Create(home).Error
}

func (r *HomeRepositoryImpl) CreateImages(db *gorm.DB, images []models.Image) error {
	if len(images) == 0 {
		return nil
	}
	return db.Create(&images).Error
}

func (r *HomeRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.Model(&models.Home{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHomeNotFound
	}
	return nil
}

func (r *HomeRepositoryImpl) DeleteImagesByHome(db *gorm.DB, homeID uint) error {
	return db.Where("home_id = ?", homeID).Delete(&models.Image{}).Error
}

func (r *HomeRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Where("id = ?", id).Delete(&models.Home{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHomeNotFound
	}
	return nil
}

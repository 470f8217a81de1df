package repositories

import (
	"realty_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByHomeWithBuyer(db *gorm.DB, homeID uint) ([]models.Message, error)
	DeleteByHome(db *gorm.DB, homeID uint) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Omit("Home", "Buyer", "Realtor").Create(message).Error
}

func (r *MessageRepositoryImpl) FindByHomeWithBuyer(db *gorm.DB, homeID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.Preload("Buyer").
		Where("home_id = ?", homeID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) DeleteByHome(db *gorm.DB, homeID uint) error {
	return db.Where("home_id = ?", homeID).Delete(&models.Message{}).Error
}

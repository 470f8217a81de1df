package models

import "time"

// Message - запрос покупателя риелтору по объявлению.
// RealtorID фиксируется в момент создания и не пересчитывается при смене владельца.
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	Message   string    `gorm:"type:text;not null"`
	HomeID    uint      `gorm:"not null;index"`
	BuyerID   uint      `gorm:"not null;index"`
	RealtorID uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// Relations
	Home    *Home `gorm:"foreignKey:HomeID"`
	Buyer   *User `gorm:"foreignKey:BuyerID"`
	Realtor *User `gorm:"foreignKey:RealtorID"`
}

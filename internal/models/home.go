package models

import "time"

// Home - объявление о продаже недвижимости
type Home struct {
	BaseModel
	Address           string       `gorm:"not null"`
	Slug              string       `gorm:"size:255;index"`
	NumberOfBedrooms  int          `gorm:"not null"`
	NumberOfBathrooms float64      `gorm:"not null"`
	City              string       `gorm:"size:120;not null;index"`
	ListedDate        time.Time    `gorm:"not null"`
	Price             float64      `gorm:"not null;index"`
	LandSize          float64      `gorm:"not null"`
	PropertyType      PropertyType `gorm:"type:varchar(20);not null;index"`
	RealtorID         uint         `gorm:"not null;index"`

	// Relations
	Realtor *User   `gorm:"foreignKey:RealtorID"`
	Images  []Image `gorm:"foreignKey:HomeID"`
}

type Image struct {
	BaseModel
	URL    string `gorm:"not null"`
	HomeID uint   `gorm:"not null;index"`
}

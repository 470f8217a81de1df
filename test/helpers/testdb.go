package helpers

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"realty_backend/database"
	"realty_backend/internal/auth"
	"realty_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// NewTestDB создает отдельную in-memory SQLite базу с примененными миграциями
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Не удалось открыть тестовую БД")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Одно соединение: in-memory база живет, пока оно открыто
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateUser сохраняет пользователя с захешированным паролем
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "Не удалось хешировать пароль")

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        "09123456789",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", email)
	return user
}

// CreateHome сохраняет объявление с фотографиями
func CreateHome(t *testing.T, db *gorm.DB, realtorID uint, city string, price float64, imageURLs ...string) *models.Home {
	t.Helper()

	home := &models.Home{
		Address:           fmt.Sprintf("%d Main St", dbCounter.Add(1)),
		NumberOfBedrooms:  3,
		NumberOfBathrooms: 2,
		City:              city,
		Price:             price,
		LandSize:          450,
		PropertyType:      models.PropertyTypeResidential,
		RealtorID:         realtorID,
	}
	for _, url := range imageURLs {
		home.Images = append(home.Images, models.Image{URL: url})
	}
	require.NoError(t, db.Create(home).Error, "Не удалось создать объявление")
	return home
}

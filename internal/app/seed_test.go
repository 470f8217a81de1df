package app

import (
	"io"
	"testing"

	"realty_backend/database"
	"realty_backend/internal/auth"
	"realty_backend/internal/config"
	"realty_backend/internal/logger"
	"realty_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:seed_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestSeedFirstAdmin(t *testing.T) {
	logger.InitWithWriter("test", io.Discard)
	db := openSeedDB(t)

	cfg := config.Default()
	require.NoError(t, seedFirstAdmin(db, cfg), "missing credentials skip seeding")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	cfg.FirstAdmin = config.FirstAdminConfig{Email: " Root@Example.com ", Password: "admin-pass"}
	require.NoError(t, seedFirstAdmin(db, cfg))
	require.NoError(t, seedFirstAdmin(db, cfg), "seeding twice is a no-op")

	var admins []models.User
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "root@example.com", admins[0].Email)
	assert.Equal(t, models.UserRoleAdmin, admins[0].Role)
	assert.True(t, auth.CheckPasswordHash("admin-pass", admins[0].PasswordHash))
}

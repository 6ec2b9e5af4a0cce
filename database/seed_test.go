package database

import (
	"jetsetgo/helper"
	"jetsetgo/model"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDataCreatesAdminOnce(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "changeme")
	db := openMemory(t)

	SeedData(db)
	SeedData(db)

	var admins []model.Admin
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "root@example.com", admins[0].AdminEmail)
	assert.True(t, helper.CheckPasswordHash("changeme", admins[0].AdminPassword))
}

func TestSeedDataSkipsWithoutCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	db := openMemory(t)

	SeedData(db)

	var count int64
	require.NoError(t, db.Model(&model.Admin{}).Count(&count).Error)
	assert.Zero(t, count)
}

package repository

import (
	"fmt"
	"testing"

	"gramseva/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a per-test in-memory SQLite database. The name keeps
// the memory DB alive across the pooled connections GORM opens.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Village{},
		&models.Member{},
		&models.Scheme{},
		&models.GalleryImage{},
		&models.ContactMessage{},
	))
	return db
}

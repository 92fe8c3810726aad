package services

import (
	"fmt"
	"strings"
	"testing"

	"wisma-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB builds an isolated in-memory database per test. The DSN is
// keyed by test name so shared-cache connections from the pool all see
// the same database without leaking across tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Building{},
		&models.Institution{},
		&models.Room{},
		&models.Reservation{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedBuilding(t *testing.T, db *gorm.DB, name string) models.Building {
	t.Helper()
	building := models.Building{Name: name}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("seed building %s: %v", name, err)
	}
	return building
}

func seedRoom(t *testing.T, db *gorm.DB, buildingID uint, number string, capacity int) models.Room {
	t.Helper()
	room := models.Room{
		BuildingID: buildingID,
		RoomNumber: number,
		Capacity:   capacity,
		Status:     models.RoomStatusAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room %s: %v", number, err)
	}
	return room
}

func seedInstitution(t *testing.T, db *gorm.DB, name string, rate int64) models.Institution {
	t.Helper()
	inst := models.Institution{Name: name, RatePerPerson: rate}
	if err := db.Create(&inst).Error; err != nil {
		t.Fatalf("seed institution %s: %v", name, err)
	}
	return inst
}

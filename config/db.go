package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"wisma-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "wisma_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase inserts the default pricing tiers and a starter building
// with a few rooms. Idempotent: only runs against empty tables.
func SeedDatabase() {
	var instCount int64
	DB.Model(&models.Institution{}).Count(&instCount)
	if instCount == 0 {
		institutions := []models.Institution{
			{Name: "Umum", RatePerPerson: 50000},
			{Name: "Instansi Pemerintah", RatePerPerson: 75000},
		}
		if err := DB.Create(&institutions).Error; err != nil {
			log.Printf("warning: failed to seed institutions: %v", err)
		} else {
			log.Println("Institutions seeded")
		}
	}

	var buildingCount int64
	DB.Model(&models.Building{}).Count(&buildingCount)
	if buildingCount == 0 {
		building := models.Building{Name: "Gedung A", Address: "Jl. Asrama No. 1"}
		if err := DB.Create(&building).Error; err != nil {
			log.Printf("warning: failed to seed building: %v", err)
			return
		}

		rooms := []models.Room{
			{BuildingID: building.ID, RoomNumber: "101", Capacity: 2, Status: models.RoomStatusAvailable, Facilities: "AC, kamar mandi dalam"},
			{BuildingID: building.ID, RoomNumber: "102", Capacity: 2, Status: models.RoomStatusAvailable, Facilities: "AC, kamar mandi dalam"},
			{BuildingID: building.ID, RoomNumber: "103", Capacity: 4, Status: models.RoomStatusAvailable, Facilities: "Kipas angin"},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Building and rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Building{},
		&models.Institution{},
		&models.Room{},
		&models.Reservation{},
		&models.Transaction{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

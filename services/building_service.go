package services

import (
	"errors"
	"strings"

	"wisma-backend/models"

	"gorm.io/gorm"
)

type BuildingService struct {
	DB *gorm.DB
}

func NewBuildingService(db *gorm.DB) *BuildingService {
	return &BuildingService{DB: db}
}

func (s *BuildingService) Create(building models.Building) (models.Building, error) {
	building.Name = strings.TrimSpace(building.Name)
	if building.Name == "" {
		return models.Building{}, ErrInvalidInput
	}
	if err := s.DB.Create(&building).Error; err != nil {
		return models.Building{}, err
	}
	return building, nil
}

func (s *BuildingService) GetAll() ([]models.Building, error) {
	var buildings []models.Building
	err := s.DB.Order("name ASC").Find(&buildings).Error
	return buildings, err
}

func (s *BuildingService) GetByID(id uint) (models.Building, error) {
	var building models.Building
	err := s.DB.Preload("Rooms").First(&building, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return building, ErrNotFound
	}
	return building, err
}

func (s *BuildingService) Update(building models.Building) (models.Building, error) {
	building.Name = strings.TrimSpace(building.Name)
	if building.Name == "" {
		return models.Building{}, ErrInvalidInput
	}

	result := s.DB.Model(&models.Building{}).Where("id = ?", building.ID).Updates(map[string]interface{}{
		"name":    building.Name,
		"address": building.Address,
	})
	if result.Error != nil {
		return models.Building{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Building{}, ErrNotFound
	}
	return s.GetByID(building.ID)
}

// Delete refuses while the building still has rooms.
func (s *BuildingService) Delete(id uint) error {
	var rooms int64
	if err := s.DB.Model(&models.Room{}).Where("building_id = ?", id).Count(&rooms).Error; err != nil {
		return err
	}
	if rooms > 0 {
		return ErrConflict
	}

	result := s.DB.Delete(&models.Building{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

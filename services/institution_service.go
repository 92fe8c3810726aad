package services

import (
	"errors"
	"strings"

	"wisma-backend/models"

	"gorm.io/gorm"
)

// InstitutionService manages the pricing tiers. Rates already snapshotted
// on reservations are never touched by updates here.
type InstitutionService struct {
	DB *gorm.DB
}

func NewInstitutionService(db *gorm.DB) *InstitutionService {
	return &InstitutionService{DB: db}
}

func validateInstitution(inst *models.Institution) error {
	inst.Name = strings.TrimSpace(inst.Name)
	if inst.Name == "" {
		return ErrInvalidInput
	}
	if inst.RatePerPerson <= 0 {
		return ErrInvalidInput
	}
	return nil
}

func (s *InstitutionService) Create(inst models.Institution) (models.Institution, error) {
	if err := validateInstitution(&inst); err != nil {
		return models.Institution{}, err
	}
	if err := s.DB.Create(&inst).Error; err != nil {
		return models.Institution{}, err
	}
	return inst, nil
}

func (s *InstitutionService) GetAll() ([]models.Institution, error) {
	var list []models.Institution
	err := s.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (s *InstitutionService) GetByID(id uint) (models.Institution, error) {
	var inst models.Institution
	err := s.DB.First(&inst, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inst, ErrNotFound
	}
	return inst, err
}

func (s *InstitutionService) Update(inst models.Institution) (models.Institution, error) {
	if err := validateInstitution(&inst); err != nil {
		return models.Institution{}, err
	}

	result := s.DB.Model(&models.Institution{}).Where("id = ?", inst.ID).Updates(map[string]interface{}{
		"name":            inst.Name,
		"rate_per_person": inst.RatePerPerson,
	})
	if result.Error != nil {
		return models.Institution{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Institution{}, ErrNotFound
	}
	return s.GetByID(inst.ID)
}

// Delete refuses while reservations still reference the tier, keeping the
// implicit rate history intact.
func (s *InstitutionService) Delete(id uint) error {
	var refs int64
	if err := s.DB.Model(&models.Reservation{}).Where("institution_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}

	result := s.DB.Delete(&models.Institution{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

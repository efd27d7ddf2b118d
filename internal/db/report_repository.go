package db

import (
	"errors"

	"gorm.io/gorm"

	"pda-backend/internal/models"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) ListByUser(userID uint) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportRepository) Create(report *models.Report) error {
	return repo.database.Create(report).Error
}

// FindOwned fetches a single report scoped by owner, used to resolve the
// attached PDF path before deletion.
func (repo *ReportRepository) FindOwned(id uint, userID uint) (models.Report, error) {
	var report models.Report
	if err := repo.database.
		Where("id = ? AND user_id = ?", id, userID).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, ErrNotFound
		}
		return models.Report{}, err
	}
	return report, nil
}

func (repo *ReportRepository) DeleteOwned(id uint, userID uint) error {
	result := repo.database.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Report{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *ReportRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Report{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

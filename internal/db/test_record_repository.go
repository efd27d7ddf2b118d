package db

import (
	"gorm.io/gorm"

	"pda-backend/internal/models"
)

type TestRecordRepository struct {
	database *gorm.DB
}

func NewTestRecordRepository(database *gorm.DB) *TestRecordRepository {
	return &TestRecordRepository{database: database}
}

func (repo *TestRecordRepository) ListByUser(userID uint) ([]models.TestRecord, error) {
	records := make([]models.TestRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *TestRecordRepository) Create(record *models.TestRecord) error {
	return repo.database.Create(record).Error
}

func (repo *TestRecordRepository) DeleteOwned(id uint, userID uint) error {
	result := repo.database.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.TestRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *TestRecordRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TestRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

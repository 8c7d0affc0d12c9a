package repository

import (
	"time"

	"github.com/huyphan2705/hireflow/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	WithTx(tx *gorm.DB) ApplicationRepository
	FindByID(id uint) (*model.JobApplication, error)
	FindByIDWithJob(id uint) (*model.JobApplication, error)
	UpdateStatus(id uint, status string, updatedBy uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) WithTx(tx *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: tx}
}

func (r *applicationRepository) FindByID(id uint) (*model.JobApplication, error) {
	var application model.JobApplication
	if err := r.db.First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByIDWithJob(id uint) (*model.JobApplication, error) {
	var application model.JobApplication
	if err := r.db.Preload("Job").First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) UpdateStatus(id uint, status string, updatedBy uint) error {
	return r.db.Model(&model.JobApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
			"updated_at": time.Now(),
		}).Error
}

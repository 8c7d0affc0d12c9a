package repository

import (
	"github.com/huyphan2705/hireflow/internal/model"
	"gorm.io/gorm"
)

type JobRepository interface {
	WithTx(tx *gorm.DB) JobRepository
	FindByID(id uint) (*model.Job, error)
	CountOwned(jobID uint, recruiterID uint) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) WithTx(tx *gorm.DB) JobRepository {
	return &jobRepository{db: tx}
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) CountOwned(jobID uint, recruiterID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Job{}).
		Where("id = ? AND recruiter_id = ?", jobID, recruiterID).
		Count(&count).Error
	return count, err
}

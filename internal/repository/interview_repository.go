package repository

import (
	"github.com/huyphan2705/hireflow/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	WithTx(tx *gorm.DB) InterviewRepository
	Create(interview *model.StudentInterview) error
	Update(interview *model.StudentInterview) error
	FindByID(id uint) (*model.StudentInterview, error)
	FindByIDWithTemplate(id uint) (*model.StudentInterview, error)
	FindByIDWithDetails(id uint) (*model.StudentInterview, error)
	// UpdateStatusIf flips status only when the current value matches
	// fromStatus, reporting whether the swap happened. This is the
	// compare-and-swap gate that keeps at most one grading run in flight.
	UpdateStatusIf(id uint, fromStatus, toStatus string) (bool, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	FindAllForRecruiter(recruiterID uint, statuses []string) ([]model.StudentInterview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) WithTx(tx *gorm.DB) InterviewRepository {
	return &interviewRepository{db: tx}
}

func (r *interviewRepository) Create(interview *model.StudentInterview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepository) Update(interview *model.StudentInterview) error {
	return r.db.Save(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.StudentInterview, error) {
	var interview model.StudentInterview
	if err := r.db.First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithTemplate(id uint) (*model.StudentInterview, error) {
	var interview model.StudentInterview
	err := r.db.
		Preload("Template").
		Preload("Application").
		First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithDetails(id uint) (*model.StudentInterview, error) {
	var interview model.StudentInterview
	err := r.db.
		Preload("Template").
		Preload("Application").
		Preload("Application.Job").
		Preload("Answers.Question").
		First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) UpdateStatusIf(id uint, fromStatus, toStatus string) (bool, error) {
	result := r.db.Model(&model.StudentInterview{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *interviewRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.StudentInterview{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *interviewRepository) FindAllForRecruiter(recruiterID uint, statuses []string) ([]model.StudentInterview, error) {
	var interviews []model.StudentInterview
	err := r.db.
		Joins("JOIN job_applications ON job_applications.id = student_interviews.application_id").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		Where("student_interviews.status IN ?", statuses).
		Preload("Template").
		Preload("Application").
		Order("CASE student_interviews.status WHEN 'submitted' THEN 0 WHEN 'grading' THEN 1 WHEN 'graded' THEN 2 ELSE 3 END ASC").
		Order("student_interviews.updated_at DESC").
		Find(&interviews).Error
	return interviews, err
}

package repository

import (
	"github.com/huyphan2705/hireflow/internal/model"
	"gorm.io/gorm"
)

// TemplateWithQuestionCount is the listing projection for recruiter template
// browsing.
type TemplateWithQuestionCount struct {
	model.InterviewTemplate
	QuestionCount int
}

type TemplateRepository interface {
	WithTx(tx *gorm.DB) TemplateRepository
	Create(template *model.InterviewTemplate) error
	FindByID(id uint) (*model.InterviewTemplate, error)
	FindByIDWithQuestions(id uint) (*model.InterviewTemplate, error)
	FindAllByRecruiterWithQuestionCount(recruiterID uint, jobID *uint) ([]TemplateWithQuestionCount, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) WithTx(tx *gorm.DB) TemplateRepository {
	return &templateRepository{db: tx}
}

func (r *templateRepository) Create(template *model.InterviewTemplate) error {
	// GORM creates the associated questions in the same statement batch when
	// template.Questions is populated.
	return r.db.Create(template).Error
}

func (r *templateRepository) FindByID(id uint) (*model.InterviewTemplate, error) {
	var template model.InterviewTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) FindByIDWithQuestions(id uint) (*model.InterviewTemplate, error) {
	var template model.InterviewTemplate
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("interview_questions.order_in_template ASC")
	}).First(&template, id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) FindAllByRecruiterWithQuestionCount(recruiterID uint, jobID *uint) ([]TemplateWithQuestionCount, error) {
	var results []TemplateWithQuestionCount
	query := r.db.Model(&model.InterviewTemplate{}).
		Select("interview_templates.*, (SELECT COUNT(*) FROM interview_questions WHERE interview_questions.template_id = interview_templates.id AND interview_questions.deleted_at IS NULL) as question_count").
		Where("interview_templates.recruiter_id = ?", recruiterID)
	if jobID != nil {
		query = query.Where("interview_templates.job_id = ?", *jobID)
	}
	err := query.Order("interview_templates.created_at DESC").Scan(&results).Error
	return results, err
}

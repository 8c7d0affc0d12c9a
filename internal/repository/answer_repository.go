package repository

import (
	"github.com/huyphan2705/hireflow/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	BulkCreate(answers []model.StudentAnswer) error
	Update(answer *model.StudentAnswer) error
	// FindByInterviewOrdered returns the interview's answers with their
	// questions preloaded, in question order.
	FindByInterviewOrdered(interviewID uint) ([]model.StudentAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) BulkCreate(answers []model.StudentAnswer) error {
	return r.db.Create(&answers).Error
}

func (r *answerRepository) Update(answer *model.StudentAnswer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByInterviewOrdered(interviewID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.db.
		Joins("JOIN interview_questions ON interview_questions.id = student_answers.question_id").
		Where("student_answers.student_interview_id = ?", interviewID).
		Order("interview_questions.order_in_template ASC").
		Preload("Question").
		Find(&answers).Error
	return answers, err
}

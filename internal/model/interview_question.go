package model

import (
	"time"

	"gorm.io/gorm"
)

// InterviewQuestion belongs to a template. OrderInTemplate values form a
// contiguous 1..N sequence per template. IdealAnswer is the grading rubric
// and must never reach a candidate-facing response.
type InterviewQuestion struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	TemplateID      uint           `json:"template_id" gorm:"not null;index"`
	OrderInTemplate int            `json:"order_in_template" gorm:"not null"`
	QuestionText    string         `json:"question_text" gorm:"type:text;not null"`
	IdealAnswer     string         `json:"ideal_answer" gorm:"type:text;not null"`
	QuestionType    string         `json:"question_type" gorm:"not null"` // "technical", "behavioral", "situational"
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentAnswer rows are bulk-created once at submission time and later
// updated in place by the grading run. Exactly one row exists per
// (interview, question); rows are never re-created or deleted.
type StudentAnswer struct {
	ID                 uint              `gorm:"primarykey" json:"id"`
	StudentInterviewID uint              `json:"student_interview_id" gorm:"not null;uniqueIndex:idx_answer_interview_question"`
	QuestionID         uint              `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_interview_question"`
	Question           InterviewQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerText         string            `json:"answer_text" gorm:"type:text"`
	AIScore            *float64          `json:"ai_score,omitempty"`
	AIEvaluation       string            `json:"ai_evaluation,omitempty" gorm:"type:text"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	DeletedAt          gorm.DeletedAt    `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Job application statuses relevant to the interview pipeline. The rest of
// the lifecycle (rejected, hired, ...) is managed by the application service.
const (
	ApplicationStatusPending       = "pending"
	ApplicationStatusReviewed      = "reviewed"
	ApplicationStatusInterviewSent = "interview_sent"
)

type JobApplication struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	JobID       uint           `json:"job_id" gorm:"not null;index"`
	Job         Job            `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CandidateID uint           `json:"candidate_id" gorm:"not null;index"`
	Status      string         `json:"status" gorm:"not null;default:'pending'"`
	UpdatedBy   *uint          `json:"updated_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

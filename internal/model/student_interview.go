package model

import (
	"time"

	"gorm.io/gorm"
)

// Interview statuses. Transitions are monotonic
// (sent -> started -> submitted -> grading -> graded) except the single
// recovery edge grading -> submitted taken when a grading run fails.
const (
	InterviewStatusSent      = "sent"
	InterviewStatusStarted   = "started"
	InterviewStatusSubmitted = "submitted"
	InterviewStatusGrading   = "grading"
	InterviewStatusGraded    = "graded"
)

// StudentInterview is one candidate's attempt against one template. The
// composite unique index enforces at most one interview per
// (application, template) pair.
type StudentInterview struct {
	ID                  uint              `gorm:"primarykey" json:"id"`
	ApplicationID       uint              `json:"application_id" gorm:"not null;uniqueIndex:idx_interview_app_template"`
	Application         JobApplication    `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	TemplateID          uint              `json:"template_id" gorm:"not null;uniqueIndex:idx_interview_app_template"`
	Template            InterviewTemplate `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	Status              string            `json:"status" gorm:"not null;default:'sent';index"`
	RecruiterMessage    string            `json:"recruiter_message" gorm:"type:text"`
	TimeStarted         *time.Time        `json:"time_started,omitempty"`
	TimeSubmitted       *time.Time        `json:"time_submitted,omitempty"`
	OverallScore        *float64          `json:"overall_score,omitempty"`
	AIOverallEvaluation string            `json:"ai_overall_evaluation,omitempty" gorm:"type:text"`
	Answers             []StudentAnswer   `json:"answers,omitempty" gorm:"foreignKey:StudentInterviewID"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	DeletedAt           gorm.DeletedAt    `gorm:"index" json:"-"`
}

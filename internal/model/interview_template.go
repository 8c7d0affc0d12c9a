package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InterviewTemplate is a recruiter-owned, AI-authored question set tied to a
// job. Immutable once created.
type InterviewTemplate struct {
	ID               uint                `gorm:"primarykey" json:"id"`
	RecruiterID      uint                `json:"recruiter_id" gorm:"not null;index"`
	JobID            uint                `json:"job_id" gorm:"not null;index"`
	Job              Job                 `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Title            string              `json:"title" gorm:"not null"`
	TimeLimitMinutes int                 `json:"time_limit_minutes" gorm:"not null"`
	PromptSettings   datatypes.JSON      `json:"prompt_settings,omitempty"`
	Questions        []InterviewQuestion `json:"questions,omitempty" gorm:"foreignKey:TemplateID"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`
}

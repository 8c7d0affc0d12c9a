package model

import (
	"time"

	"gorm.io/gorm"
)

// Job is owned by the recruiter who posted it. Job CRUD itself lives in the
// platform's job service; this service only reads jobs for ownership checks
// and template generation.
type Job struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	RecruiterID uint           `json:"recruiter_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

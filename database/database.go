package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/config"
	"github.com/huyphan2705/hireflow/internal/model"
)

func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.User, cfg.Database.Password, cfg.Database.Name, cfg.Database.Port,
	)

	// TranslateError so unique index violations surface as
	// gorm.ErrDuplicatedKey (duplicate invite detection relies on this).
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Connected to database")
	return db, nil
}

// SeedDemoData inserts a demo job and two applications when the jobs table is
// empty, so a fresh instance is explorable without the platform's job service.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	job := model.Job{
		RecruiterID: 1,
		Title:       "Backend Engineer (Go)",
		Description: "Design and operate Go microservices: REST APIs, PostgreSQL, background workers, and integrations with LLM providers.",
	}
	if err := db.Create(&job).Error; err != nil {
		return fmt.Errorf("failed to seed demo job: %w", err)
	}

	applications := []model.JobApplication{
		{JobID: job.ID, CandidateID: 101, Status: model.ApplicationStatusPending},
		{JobID: job.ID, CandidateID: 102, Status: model.ApplicationStatusReviewed},
	}
	if err := db.Create(&applications).Error; err != nil {
		return fmt.Errorf("failed to seed demo applications: %w", err)
	}

	log.Info().Uint("jobID", job.ID).Msg("Seeded demo job and applications")
	return nil
}

package service

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/config"
	"github.com/huyphan2705/hireflow/internal/model"
)

// GradingSweeper periodically reports interviews sitting in grading longer
// than the configured threshold. A run that crashed with the process leaves
// the interview in grading with no automatic recovery; the sweeper gives
// operators the signal to revert and re-trigger. It deliberately does not
// revert by itself, since it cannot tell a crashed run from a slow one.
type GradingSweeper struct {
	db         *gorm.DB
	stuckAfter time.Duration
	cron       *cron.Cron
}

func NewGradingSweeper(db *gorm.DB, cfg *config.Config) *GradingSweeper {
	return &GradingSweeper{
		db:         db,
		stuckAfter: time.Duration(cfg.Grading.StuckAfterMinutes) * time.Minute,
		cron:       cron.New(),
	}
}

func (s *GradingSweeper) Start() error {
	_, err := s.cron.AddFunc("@every 5m", s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Dur("stuckAfter", s.stuckAfter).Msg("Grading sweeper started")
	return nil
}

func (s *GradingSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Grading sweeper stopped")
}

func (s *GradingSweeper) sweep() {
	cutoff := time.Now().Add(-s.stuckAfter)

	var stuck []model.StudentInterview
	err := s.db.
		Where("status = ? AND updated_at < ?", model.InterviewStatusGrading, cutoff).
		Find(&stuck).Error
	if err != nil {
		log.Error().Err(err).Msg("Grading sweep query failed")
		return
	}

	for _, interview := range stuck {
		log.Warn().
			Uint("interviewID", interview.ID).
			Time("updatedAt", interview.UpdatedAt).
			Msg("Interview stuck in grading beyond threshold; manual revert and re-grade needed")
	}
}

package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
)

// InvitationService links a template to a job application, creating the
// interview instance and advancing the application's status.
type InvitationService interface {
	SendInvite(recruiterID uint, req dto.InviteCreateDTO) (*dto.InterviewHeaderDTO, error)
}

type invitationService struct {
	applicationRepo repository.ApplicationRepository
	templateRepo    repository.TemplateRepository
	interviewRepo   repository.InterviewRepository
	ownership       OwnershipService
	db              *gorm.DB
}

func NewInvitationService(
	applicationRepo repository.ApplicationRepository,
	templateRepo repository.TemplateRepository,
	interviewRepo repository.InterviewRepository,
	ownership OwnershipService,
	db *gorm.DB,
) InvitationService {
	return &invitationService{
		applicationRepo: applicationRepo,
		templateRepo:    templateRepo,
		interviewRepo:   interviewRepo,
		ownership:       ownership,
		db:              db,
	}
}

func (s *invitationService) SendInvite(recruiterID uint, req dto.InviteCreateDTO) (*dto.InterviewHeaderDTO, error) {
	application, err := s.applicationRepo.FindByID(req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("application %d not found", req.ApplicationID)
		}
		return nil, apperror.Persistence("failed to load application", err)
	}

	if err := s.ownership.RecruiterOwnsJob(nil, recruiterID, application.JobID); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.FindByID(req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("template %d not found", req.TemplateID)
		}
		return nil, apperror.Persistence("failed to load template", err)
	}
	if template.JobID != application.JobID {
		return nil, apperror.Validation("template %d belongs to a different job than application %d", req.TemplateID, req.ApplicationID)
	}

	if application.Status != model.ApplicationStatusPending && application.Status != model.ApplicationStatusReviewed {
		return nil, apperror.InvalidState("application %d has status %q, expected pending or reviewed", application.ID, application.Status)
	}

	interview := model.StudentInterview{
		ApplicationID:    application.ID,
		TemplateID:       template.ID,
		Status:           model.InterviewStatusSent,
		RecruiterMessage: req.Message,
	}

	// Interview insert and application status flip succeed or fail together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.interviewRepo.WithTx(tx).Create(&interview); err != nil {
			return err
		}
		return s.applicationRepo.WithTx(tx).UpdateStatus(application.ID, model.ApplicationStatusInterviewSent, recruiterID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.DuplicateInvite("application %d already has an interview for template %d", application.ID, template.ID)
		}
		log.Error().Err(err).Uint("applicationID", application.ID).Uint("templateID", template.ID).Msg("SendInvite: transaction failed")
		return nil, apperror.Persistence("failed to create interview invitation", err)
	}

	log.Info().
		Uint("interviewID", interview.ID).
		Uint("applicationID", application.ID).
		Uint("templateID", template.ID).
		Uint("recruiterID", recruiterID).
		Msg("Interview invitation sent")

	return &dto.InterviewHeaderDTO{
		ID:               interview.ID,
		ApplicationID:    interview.ApplicationID,
		TemplateID:       interview.TemplateID,
		Status:           interview.Status,
		RecruiterMessage: interview.RecruiterMessage,
		TimeLimitMinutes: template.TimeLimitMinutes,
		CreatedAt:        interview.CreatedAt,
	}, nil
}

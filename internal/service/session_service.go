package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
)

// SessionService is the candidate-facing state machine:
// sent -> started -> submitted. Start is idempotent so a page reload never
// restarts the clock.
type SessionService interface {
	GetInterview(candidateID, interviewID uint) (*dto.InterviewHeaderDTO, error)
	StartInterview(candidateID, interviewID uint) (*dto.InterviewSessionDTO, error)
	SubmitInterview(candidateID, interviewID uint, req dto.InterviewSubmitDTO) (*dto.InterviewHeaderDTO, error)
}

type sessionService struct {
	interviewRepo repository.InterviewRepository
	templateRepo  repository.TemplateRepository
	answerRepo    repository.AnswerRepository
	ownership     OwnershipService
	db            *gorm.DB
	now           func() time.Time
}

func NewSessionService(
	interviewRepo repository.InterviewRepository,
	templateRepo repository.TemplateRepository,
	answerRepo repository.AnswerRepository,
	ownership OwnershipService,
	db *gorm.DB,
) SessionService {
	return &sessionService{
		interviewRepo: interviewRepo,
		templateRepo:  templateRepo,
		answerRepo:    answerRepo,
		ownership:     ownership,
		db:            db,
		now:           time.Now,
	}
}

func (s *sessionService) loadInterviewWithTemplate(interviewID uint) (*model.StudentInterview, error) {
	interview, err := s.interviewRepo.FindByIDWithTemplate(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("interview %d not found", interviewID)
		}
		return nil, apperror.Persistence("failed to load interview", err)
	}
	return interview, nil
}

func (s *sessionService) GetInterview(candidateID, interviewID uint) (*dto.InterviewHeaderDTO, error) {
	if err := s.ownership.CandidateOwnsInterview(nil, candidateID, interviewID); err != nil {
		return nil, err
	}
	interview, err := s.loadInterviewWithTemplate(interviewID)
	if err != nil {
		return nil, err
	}
	return interviewHeaderDTO(interview), nil
}

func (s *sessionService) StartInterview(candidateID, interviewID uint) (*dto.InterviewSessionDTO, error) {
	if err := s.ownership.CandidateOwnsInterview(nil, candidateID, interviewID); err != nil {
		return nil, err
	}

	interview, err := s.loadInterviewWithTemplate(interviewID)
	if err != nil {
		return nil, err
	}

	switch interview.Status {
	case model.InterviewStatusSubmitted, model.InterviewStatusGrading, model.InterviewStatusGraded:
		return nil, apperror.InvalidState("interview %d has already been submitted", interviewID)
	case model.InterviewStatusSent:
		startedAt := s.now()
		err = s.db.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&model.StudentInterview{}).
				Where("id = ? AND status = ?", interviewID, model.InterviewStatusSent).
				Updates(map[string]interface{}{
					"status":       model.InterviewStatusStarted,
					"time_started": startedAt,
				})
			return result.Error
		})
		if err != nil {
			log.Error().Err(err).Uint("interviewID", interviewID).Msg("StartInterview: failed to stamp start")
			return nil, apperror.Persistence("failed to start interview", err)
		}
		// Re-read so a concurrent first start wins and we return its stamp.
		interview, err = s.loadInterviewWithTemplate(interviewID)
		if err != nil {
			return nil, err
		}
		log.Info().Uint("interviewID", interviewID).Uint("candidateID", candidateID).Time("timeStarted", *interview.TimeStarted).Msg("Interview started")
	case model.InterviewStatusStarted:
		// Idempotent resume: the original time_started stands, no second
		// stamping, no side effect.
		log.Info().Uint("interviewID", interviewID).Uint("candidateID", candidateID).Msg("Interview resumed")
	default:
		return nil, apperror.InvalidState("interview %d has unexpected status %q", interviewID, interview.Status)
	}

	template, err := s.templateRepo.FindByIDWithQuestions(interview.TemplateID)
	if err != nil {
		return nil, apperror.Persistence("failed to load interview questions", err)
	}

	session := dto.InterviewSessionDTO{
		InterviewID:      interview.ID,
		Status:           interview.Status,
		TimeLimitMinutes: template.TimeLimitMinutes,
		TimeStarted:      *interview.TimeStarted,
	}
	// Candidate projection: the rubric never leaves the server.
	session.Questions = make([]dto.QuestionPublicDTO, 0, len(template.Questions))
	for _, q := range template.Questions {
		session.Questions = append(session.Questions, dto.QuestionPublicDTO{
			ID:              q.ID,
			OrderInTemplate: q.OrderInTemplate,
			QuestionText:    q.QuestionText,
			QuestionType:    q.QuestionType,
		})
	}
	return &session, nil
}

func (s *sessionService) SubmitInterview(candidateID, interviewID uint, req dto.InterviewSubmitDTO) (*dto.InterviewHeaderDTO, error) {
	if err := s.ownership.CandidateOwnsInterview(nil, candidateID, interviewID); err != nil {
		return nil, err
	}

	interview, err := s.loadInterviewWithTemplate(interviewID)
	if err != nil {
		return nil, err
	}

	switch interview.Status {
	case model.InterviewStatusSubmitted, model.InterviewStatusGrading, model.InterviewStatusGraded:
		return nil, apperror.InvalidState("interview %d has already been submitted", interviewID)
	case model.InterviewStatusSent:
		return nil, apperror.InvalidState("interview %d has not been started", interviewID)
	case model.InterviewStatusStarted:
		// proceed
	default:
		return nil, apperror.InvalidState("interview %d has unexpected status %q", interviewID, interview.Status)
	}

	template, err := s.templateRepo.FindByIDWithQuestions(interview.TemplateID)
	if err != nil {
		return nil, apperror.Persistence("failed to load interview questions", err)
	}
	questionSet := make(map[uint]bool, len(template.Questions))
	for _, q := range template.Questions {
		questionSet[q.ID] = true
	}

	seen := make(map[uint]bool, len(req.Answers))
	answers := make([]model.StudentAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if !questionSet[a.QuestionID] {
			return nil, apperror.Validation("question %d is not part of interview %d", a.QuestionID, interviewID)
		}
		if seen[a.QuestionID] {
			return nil, apperror.Validation("duplicate answer for question %d", a.QuestionID)
		}
		seen[a.QuestionID] = true
		// Blank answer text is a valid stored answer.
		answers = append(answers, model.StudentAnswer{
			StudentInterviewID: interviewID,
			QuestionID:         a.QuestionID,
			AnswerText:         a.AnswerText,
		})
	}

	submittedAt := s.now()
	// Soft limit: late submissions are accepted, only flagged in logs.
	if interview.TimeStarted != nil {
		deadline := interview.TimeStarted.Add(time.Duration(template.TimeLimitMinutes) * time.Minute)
		if submittedAt.After(deadline) {
			log.Warn().
				Uint("interviewID", interviewID).
				Time("deadline", deadline).
				Dur("late_by", submittedAt.Sub(deadline)).
				Msg("SubmitInterview: late submission accepted")
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.StudentInterview{}).
			Where("id = ? AND status = ?", interviewID, model.InterviewStatusStarted).
			Updates(map[string]interface{}{
				"status":         model.InterviewStatusSubmitted,
				"time_submitted": submittedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.InvalidState("interview %d was submitted concurrently", interviewID)
		}
		return s.answerRepo.WithTx(tx).BulkCreate(answers)
	})
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("SubmitInterview: transaction failed")
		return nil, apperror.Persistence("failed to persist submission", err)
	}

	log.Info().Uint("interviewID", interviewID).Uint("candidateID", candidateID).Int("answers", len(answers)).Msg("Interview submitted")

	interview, err = s.loadInterviewWithTemplate(interviewID)
	if err != nil {
		return nil, err
	}
	return interviewHeaderDTO(interview), nil
}

func interviewHeaderDTO(interview *model.StudentInterview) *dto.InterviewHeaderDTO {
	return &dto.InterviewHeaderDTO{
		ID:               interview.ID,
		ApplicationID:    interview.ApplicationID,
		TemplateID:       interview.TemplateID,
		Status:           interview.Status,
		RecruiterMessage: interview.RecruiterMessage,
		TimeLimitMinutes: interview.Template.TimeLimitMinutes,
		TimeStarted:      interview.TimeStarted,
		TimeSubmitted:    interview.TimeSubmitted,
		CreatedAt:        interview.CreatedAt,
	}
}

package service

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
)

// ResultService is the recruiter read side: interviews that have reached
// submission and their full graded detail.
type ResultService interface {
	ListResults(recruiterID uint) ([]dto.InterviewSummaryDTO, error)
	GetResultDetail(recruiterID, interviewID uint) (*dto.InterviewResultDetailDTO, error)
}

type resultService struct {
	interviewRepo repository.InterviewRepository
	ownership     OwnershipService
}

func NewResultService(interviewRepo repository.InterviewRepository, ownership OwnershipService) ResultService {
	return &resultService{interviewRepo: interviewRepo, ownership: ownership}
}

func (s *resultService) ListResults(recruiterID uint) ([]dto.InterviewSummaryDTO, error) {
	statuses := []string{model.InterviewStatusSubmitted, model.InterviewStatusGrading, model.InterviewStatusGraded}
	interviews, err := s.interviewRepo.FindAllForRecruiter(recruiterID, statuses)
	if err != nil {
		log.Error().Err(err).Uint("recruiterID", recruiterID).Msg("ListResults: repository error")
		return nil, apperror.Persistence("failed to list interview results", err)
	}

	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for _, interview := range interviews {
		summaries = append(summaries, dto.InterviewSummaryDTO{
			ID:            interview.ID,
			ApplicationID: interview.ApplicationID,
			CandidateID:   interview.Application.CandidateID,
			TemplateID:    interview.TemplateID,
			TemplateTitle: interview.Template.Title,
			JobID:         interview.Application.JobID,
			Status:        interview.Status,
			TimeSubmitted: interview.TimeSubmitted,
			OverallScore:  interview.OverallScore,
			CreatedAt:     interview.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *resultService) GetResultDetail(recruiterID, interviewID uint) (*dto.InterviewResultDetailDTO, error) {
	if err := s.ownership.RecruiterOwnsInterview(nil, recruiterID, interviewID); err != nil {
		return nil, err
	}

	interview, err := s.interviewRepo.FindByIDWithDetails(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("interview %d not found", interviewID)
		}
		return nil, apperror.Persistence("failed to load interview detail", err)
	}

	sort.SliceStable(interview.Answers, func(i, j int) bool {
		return interview.Answers[i].Question.OrderInTemplate < interview.Answers[j].Question.OrderInTemplate
	})

	detail := dto.InterviewResultDetailDTO{
		ID:                  interview.ID,
		ApplicationID:       interview.ApplicationID,
		CandidateID:         interview.Application.CandidateID,
		TemplateID:          interview.TemplateID,
		TemplateTitle:       interview.Template.Title,
		JobID:               interview.Application.JobID,
		Status:              interview.Status,
		RecruiterMessage:    interview.RecruiterMessage,
		TimeStarted:         interview.TimeStarted,
		TimeSubmitted:       interview.TimeSubmitted,
		OverallScore:        interview.OverallScore,
		AIOverallEvaluation: interview.AIOverallEvaluation,
	}

	detail.Answers = make([]dto.AnswerReviewDTO, 0, len(interview.Answers))
	for _, answer := range interview.Answers {
		detail.Answers = append(detail.Answers, dto.AnswerReviewDTO{
			Question: dto.QuestionDetailDTO{
				ID:              answer.Question.ID,
				OrderInTemplate: answer.Question.OrderInTemplate,
				QuestionText:    answer.Question.QuestionText,
				IdealAnswer:     answer.Question.IdealAnswer,
				QuestionType:    answer.Question.QuestionType,
			},
			AnswerText:   answer.AnswerText,
			AIScore:      answer.AIScore,
			AIEvaluation: answer.AIEvaluation,
		})
	}
	return &detail, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/config"
	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
)

// GradingService runs the AI grading pipeline. The synchronous phase only
// flips the interview into grading; the run itself is detached from the
// caller and reports its outcome on the interview record.
type GradingService interface {
	RequestGrading(recruiterID, interviewID uint) (*dto.GradingAcceptedDTO, error)
}

type gradingService struct {
	interviewRepo repository.InterviewRepository
	answerRepo    repository.AnswerRepository
	gemini        GeminiLLMService
	ownership     OwnershipService
	retry         RetryPolicy
	db            *gorm.DB

	// afterRun, when set, is called once a detached run finishes. Used by
	// tests to synchronize with the background goroutine.
	afterRun func(interviewID uint, err error)
}

func NewGradingService(
	interviewRepo repository.InterviewRepository,
	answerRepo repository.AnswerRepository,
	gemini GeminiLLMService,
	ownership OwnershipService,
	cfg *config.Config,
	db *gorm.DB,
) GradingService {
	return &gradingService{
		interviewRepo: interviewRepo,
		answerRepo:    answerRepo,
		gemini:        gemini,
		ownership:     ownership,
		retry:         NewRetryPolicy(cfg.Grading.MaxAttempts, time.Duration(cfg.Grading.RetryBaseMs)*time.Millisecond),
		db:            db,
	}
}

func (s *gradingService) RequestGrading(recruiterID, interviewID uint) (*dto.GradingAcceptedDTO, error) {
	if err := s.ownership.RecruiterOwnsInterview(nil, recruiterID, interviewID); err != nil {
		return nil, err
	}

	// The status flip doubles as the mutual-exclusion gate: of two
	// concurrent requests, exactly one sees the row in submitted state.
	swapped, err := s.interviewRepo.UpdateStatusIf(interviewID, model.InterviewStatusSubmitted, model.InterviewStatusGrading)
	if err != nil {
		return nil, apperror.Persistence("failed to transition interview to grading", err)
	}
	if !swapped {
		interview, loadErr := s.interviewRepo.FindByID(interviewID)
		if loadErr != nil {
			if errors.Is(loadErr, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound("interview %d not found", interviewID)
			}
			return nil, apperror.Persistence("failed to load interview", loadErr)
		}
		return nil, apperror.InvalidState("interview %d has status %q, grading requires submitted", interviewID, interview.Status)
	}

	runID := uuid.NewString()
	log.Info().Uint("interviewID", interviewID).Uint("recruiterID", recruiterID).Str("runID", runID).Msg("Grading run accepted")

	go s.runGrading(runID, interviewID)

	return &dto.GradingAcceptedDTO{
		InterviewID: interviewID,
		Status:      model.InterviewStatusGrading,
		RunID:       runID,
	}, nil
}

// runGrading is the detached phase. It is never awaited by the caller;
// failures revert the interview to submitted with a diagnostic note so a
// human can re-trigger grading.
func (s *gradingService) runGrading(runID string, interviewID uint) {
	var runErr error
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("runID", runID).Uint("interviewID", interviewID).Interface("panic", r).Msg("Grading run panicked")
			runErr = fmt.Errorf("grading run panicked: %v", r)
			s.failRun(runID, interviewID, runErr)
		}
		if s.afterRun != nil {
			s.afterRun(interviewID, runErr)
		}
	}()

	ctx := context.Background()
	started := time.Now()

	interview, err := s.interviewRepo.FindByIDWithDetails(interviewID)
	if err != nil {
		runErr = fmt.Errorf("failed to load interview: %w", err)
		s.failRun(runID, interviewID, runErr)
		return
	}

	answers, err := s.answerRepo.FindByInterviewOrdered(interviewID)
	if err != nil {
		runErr = fmt.Errorf("failed to load answers: %w", err)
		s.failRun(runID, interviewID, runErr)
		return
	}
	if len(answers) == 0 {
		runErr = fmt.Errorf("interview has no answers to grade")
		s.failRun(runID, interviewID, runErr)
		return
	}

	// Questions are graded strictly one after another. This bounds load on
	// the provider and makes each question an independent retry unit whose
	// result is durable before the next call starts.
	results := make([]QuestionResult, 0, len(answers))
	for i := range answers {
		answer := &answers[i]

		var evaluation *AnswerEvaluation
		err := s.retry.Do(ctx, func() error {
			var scoreErr error
			evaluation, scoreErr = s.gemini.ScoreAnswer(ctx, answer.Question.QuestionText, answer.Question.IdealAnswer, answer.AnswerText)
			return scoreErr
		})
		if err != nil {
			runErr = fmt.Errorf("scoring question %d failed: %w", answer.QuestionID, err)
			s.failRun(runID, interviewID, runErr)
			return
		}

		answer.AIScore = &evaluation.Score
		answer.AIEvaluation = evaluation.Evaluation
		if err := s.answerRepo.Update(answer); err != nil {
			runErr = fmt.Errorf("persisting score for question %d failed: %w", answer.QuestionID, err)
			s.failRun(runID, interviewID, runErr)
			return
		}

		log.Info().
			Str("runID", runID).
			Uint("interviewID", interviewID).
			Uint("questionID", answer.QuestionID).
			Float64("score", evaluation.Score).
			Msg("Answer graded")

		results = append(results, QuestionResult{
			QuestionText: answer.Question.QuestionText,
			AnswerText:   answer.AnswerText,
			Score:        evaluation.Score,
			Evaluation:   evaluation.Evaluation,
		})
	}

	var overall *OverallEvaluation
	err = s.retry.Do(ctx, func() error {
		var overallErr error
		overall, overallErr = s.gemini.EvaluateOverall(ctx, interview.Application.Job.Title, results)
		return overallErr
	})
	if err != nil {
		runErr = fmt.Errorf("overall evaluation failed: %w", err)
		s.failRun(runID, interviewID, runErr)
		return
	}

	err = s.interviewRepo.UpdateFields(interviewID, map[string]interface{}{
		"status":                model.InterviewStatusGraded,
		"overall_score":         overall.OverallScore,
		"ai_overall_evaluation": overall.Evaluation,
	})
	if err != nil {
		runErr = fmt.Errorf("persisting final grade failed: %w", err)
		s.failRun(runID, interviewID, runErr)
		return
	}

	log.Info().
		Str("runID", runID).
		Uint("interviewID", interviewID).
		Float64("overallScore", overall.OverallScore).
		Dur("duration", time.Since(started)).
		Int("questions", len(results)).
		Msg("Grading run completed")
}

// failRun reverts the interview to submitted and records the failure reason
// as a diagnostic note. Per-question scores already written stay in place;
// a retry overwrites them.
func (s *gradingService) failRun(runID string, interviewID uint, cause error) {
	log.Error().Err(cause).Str("runID", runID).Uint("interviewID", interviewID).Msg("Grading run failed, reverting interview to submitted")

	err := s.interviewRepo.UpdateFields(interviewID, map[string]interface{}{
		"status":                model.InterviewStatusSubmitted,
		"ai_overall_evaluation": fmt.Sprintf("Grading failed (run %s): %v. Re-trigger grading to retry.", runID, cause),
	})
	if err != nil {
		// Nothing left to do but log: the interview stays in grading until
		// an operator intervenes. The sweeper will flag it.
		log.Error().Err(err).Str("runID", runID).Uint("interviewID", interviewID).Msg("Failed to revert interview after grading failure")
	}
}

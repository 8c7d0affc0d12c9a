package service

import (
	"errors"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/repository"
	"gorm.io/gorm"
)

// OwnershipService is the single authorization guard for the interview
// pipeline. Every mutating operation resolves its target down to a job and
// asks this service before touching state. All checks accept an optional
// transaction handle so they can run inside the caller's transaction.
type OwnershipService interface {
	// RecruiterOwnsJob fails with an authorization error unless the job
	// exists and is owned by the recruiter.
	RecruiterOwnsJob(tx *gorm.DB, recruiterID, jobID uint) error
	// RecruiterOwnsInterview walks interview -> application -> job.
	RecruiterOwnsInterview(tx *gorm.DB, recruiterID, interviewID uint) error
	// CandidateOwnsInterview checks the interview's application belongs to
	// the candidate.
	CandidateOwnsInterview(tx *gorm.DB, candidateID, interviewID uint) error
}

type ownershipService struct {
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
	interviewRepo   repository.InterviewRepository
}

func NewOwnershipService(
	jobRepo repository.JobRepository,
	applicationRepo repository.ApplicationRepository,
	interviewRepo repository.InterviewRepository,
) OwnershipService {
	return &ownershipService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		interviewRepo:   interviewRepo,
	}
}

func (s *ownershipService) RecruiterOwnsJob(tx *gorm.DB, recruiterID, jobID uint) error {
	jobRepo := s.jobRepo
	if tx != nil {
		jobRepo = jobRepo.WithTx(tx)
	}

	job, err := jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("job %d not found", jobID)
		}
		return apperror.Persistence("failed to load job", err)
	}
	if job.RecruiterID != recruiterID {
		return apperror.Authorization("recruiter %d does not own job %d", recruiterID, jobID)
	}
	return nil
}

func (s *ownershipService) RecruiterOwnsInterview(tx *gorm.DB, recruiterID, interviewID uint) error {
	interviewRepo, applicationRepo := s.interviewRepo, s.applicationRepo
	if tx != nil {
		interviewRepo = interviewRepo.WithTx(tx)
		applicationRepo = applicationRepo.WithTx(tx)
	}

	interview, err := interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("interview %d not found", interviewID)
		}
		return apperror.Persistence("failed to load interview", err)
	}

	application, err := applicationRepo.FindByIDWithJob(interview.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("application %d not found", interview.ApplicationID)
		}
		return apperror.Persistence("failed to load application", err)
	}
	if application.Job.RecruiterID != recruiterID {
		return apperror.Authorization("recruiter %d does not own the job behind interview %d", recruiterID, interviewID)
	}
	return nil
}

func (s *ownershipService) CandidateOwnsInterview(tx *gorm.DB, candidateID, interviewID uint) error {
	interviewRepo, applicationRepo := s.interviewRepo, s.applicationRepo
	if tx != nil {
		interviewRepo = interviewRepo.WithTx(tx)
		applicationRepo = applicationRepo.WithTx(tx)
	}

	interview, err := interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("interview %d not found", interviewID)
		}
		return apperror.Persistence("failed to load interview", err)
	}

	application, err := applicationRepo.FindByID(interview.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("application %d not found", interview.ApplicationID)
		}
		return apperror.Persistence("failed to load application", err)
	}
	if application.CandidateID != candidateID {
		return apperror.Authorization("candidate %d does not own interview %d", candidateID, interviewID)
	}
	return nil
}

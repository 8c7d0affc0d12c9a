package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/huyphan2705/hireflow/config"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
)

var testDBCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	// Serialize access; the in-memory database is shared across the pool.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&model.Job{},
		&model.JobApplication{},
		&model.InterviewTemplate{},
		&model.InterviewQuestion{},
		&model.StudentInterview{},
		&model.StudentAnswer{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// stubGemini is a controllable GeminiLLMService. Unset hooks fall back to
// deterministic defaults.
type stubGemini struct {
	generateTemplateFn func(req TemplateGenerationRequest) (*GeneratedTemplate, error)
	scoreAnswerFn      func(questionText, idealAnswer, answerText string) (*AnswerEvaluation, error)
	evaluateOverallFn  func(jobTitle string, results []QuestionResult) (*OverallEvaluation, error)

	scoreCalls   atomic.Int64
	overallCalls atomic.Int64
}

func (s *stubGemini) GenerateTemplate(_ context.Context, req TemplateGenerationRequest) (*GeneratedTemplate, error) {
	if s.generateTemplateFn != nil {
		return s.generateTemplateFn(req)
	}
	generated := &GeneratedTemplate{TimeLimitMinutes: 30}
	for i := 1; i <= req.QuestionCount; i++ {
		generated.Questions = append(generated.Questions, GeneratedQuestion{
			QuestionText: fmt.Sprintf("Question %d about %s", i, req.JobTitle),
			IdealAnswer:  fmt.Sprintf("Ideal answer %d", i),
			QuestionType: "technical",
		})
	}
	return generated, nil
}

func (s *stubGemini) ScoreAnswer(_ context.Context, questionText, idealAnswer, answerText string) (*AnswerEvaluation, error) {
	s.scoreCalls.Add(1)
	if s.scoreAnswerFn != nil {
		return s.scoreAnswerFn(questionText, idealAnswer, answerText)
	}
	return &AnswerEvaluation{Score: 80, Evaluation: "Solid answer covering the rubric."}, nil
}

func (s *stubGemini) EvaluateOverall(_ context.Context, jobTitle string, results []QuestionResult) (*OverallEvaluation, error) {
	s.overallCalls.Add(1)
	if s.evaluateOverallFn != nil {
		return s.evaluateOverallFn(jobTitle, results)
	}
	return &OverallEvaluation{OverallScore: 82, Evaluation: "Good fit overall."}, nil
}

type testEnv struct {
	db            *gorm.DB
	stub          *stubGemini
	jobRepo       repository.JobRepository
	interviewRepo repository.InterviewRepository
	answerRepo    repository.AnswerRepository
	ownership     OwnershipService
	templates     TemplateService
	invitations   InvitationService
	sessions      SessionService
	grading       GradingService
	results       ResultService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	stub := &stubGemini{}

	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	ownership := NewOwnershipService(jobRepo, applicationRepo, interviewRepo)

	cfg := &config.Config{}
	cfg.Grading.MaxAttempts = 2
	cfg.Grading.RetryBaseMs = 1

	return &testEnv{
		db:            db,
		stub:          stub,
		jobRepo:       jobRepo,
		interviewRepo: interviewRepo,
		answerRepo:    answerRepo,
		ownership:     ownership,
		templates:     NewTemplateService(jobRepo, templateRepo, ownership, stub, db),
		invitations:   NewInvitationService(applicationRepo, templateRepo, interviewRepo, ownership, db),
		sessions:      NewSessionService(interviewRepo, templateRepo, answerRepo, ownership, db),
		grading:       NewGradingService(interviewRepo, answerRepo, stub, ownership, cfg, db),
		results:       NewResultService(interviewRepo, ownership),
	}
}

const (
	testRecruiterID = uint(1)
	testCandidateID = uint(101)
)

func (e *testEnv) seedJob(t *testing.T, recruiterID uint) *model.Job {
	t.Helper()
	job := &model.Job{
		RecruiterID: recruiterID,
		Title:       "Backend Engineer (Go)",
		Description: "Build and operate Go services.",
	}
	if err := e.db.Create(job).Error; err != nil {
		t.Fatalf("failed to seed job: %v", err)
	}
	return job
}

func (e *testEnv) seedApplication(t *testing.T, jobID, candidateID uint, status string) *model.JobApplication {
	t.Helper()
	application := &model.JobApplication{JobID: jobID, CandidateID: candidateID, Status: status}
	if err := e.db.Create(application).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return application
}

func (e *testEnv) seedTemplate(t *testing.T, recruiterID, jobID uint, questionCount int) *model.InterviewTemplate {
	t.Helper()
	template := &model.InterviewTemplate{
		RecruiterID:      recruiterID,
		JobID:            jobID,
		Title:            "Screening round",
		TimeLimitMinutes: 30,
	}
	for i := 1; i <= questionCount; i++ {
		template.Questions = append(template.Questions, model.InterviewQuestion{
			OrderInTemplate: i,
			QuestionText:    fmt.Sprintf("Question %d", i),
			IdealAnswer:     fmt.Sprintf("Ideal answer %d", i),
			QuestionType:    "technical",
		})
	}
	if err := e.db.Create(template).Error; err != nil {
		t.Fatalf("failed to seed template: %v", err)
	}
	return template
}

// seedSubmittedInterview walks a fixture through invite -> start -> submit
// using the real services and returns the interview id.
func (e *testEnv) seedSubmittedInterview(t *testing.T) uint {
	t.Helper()

	job := e.seedJob(t, testRecruiterID)
	application := e.seedApplication(t, job.ID, testCandidateID, model.ApplicationStatusPending)
	template := e.seedTemplate(t, testRecruiterID, job.ID, 3)

	header, err := e.invitations.SendInvite(testRecruiterID, dto.InviteCreateDTO{
		ApplicationID: application.ID,
		TemplateID:    template.ID,
		Message:       "Please complete the screening this week.",
	})
	if err != nil {
		t.Fatalf("failed to send invite: %v", err)
	}

	session, err := e.sessions.StartInterview(testCandidateID, header.ID)
	if err != nil {
		t.Fatalf("failed to start interview: %v", err)
	}

	var submission dto.InterviewSubmitDTO
	for _, q := range session.Questions {
		submission.Answers = append(submission.Answers, dto.AnswerSubmitDTO{
			QuestionID: q.ID,
			AnswerText: "My answer to: " + q.QuestionText,
		})
	}
	if _, err := e.sessions.SubmitInterview(testCandidateID, header.ID, submission); err != nil {
		t.Fatalf("failed to submit interview: %v", err)
	}
	return header.ID
}

func (e *testEnv) interviewStatus(t *testing.T, interviewID uint) string {
	t.Helper()
	interview, err := e.interviewRepo.FindByID(interviewID)
	if err != nil {
		t.Fatalf("failed to load interview %d: %v", interviewID, err)
	}
	return interview.Status
}

func waitForRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for grading run")
		return nil
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
)

// TemplateService drafts interview templates with the AI provider and
// persists them. Templates are immutable once created.
type TemplateService interface {
	CreateTemplate(ctx context.Context, recruiterID uint, req dto.TemplateCreateDTO) (*dto.TemplateResponseDTO, error)
	ListTemplates(recruiterID uint, jobID *uint) ([]dto.TemplateSummaryDTO, error)
}

type templateService struct {
	jobRepo      repository.JobRepository
	templateRepo repository.TemplateRepository
	ownership    OwnershipService
	gemini       GeminiLLMService
	db           *gorm.DB
}

func NewTemplateService(
	jobRepo repository.JobRepository,
	templateRepo repository.TemplateRepository,
	ownership OwnershipService,
	gemini GeminiLLMService,
	db *gorm.DB,
) TemplateService {
	return &templateService{
		jobRepo:      jobRepo,
		templateRepo: templateRepo,
		ownership:    ownership,
		gemini:       gemini,
		db:           db,
	}
}

func (s *templateService) CreateTemplate(ctx context.Context, recruiterID uint, req dto.TemplateCreateDTO) (*dto.TemplateResponseDTO, error) {
	if err := s.ownership.RecruiterOwnsJob(nil, recruiterID, req.JobID); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("job %d not found", req.JobID)
		}
		return nil, apperror.Persistence("failed to load job", err)
	}

	// The AI call happens before any write. A failed or malformed response
	// aborts with nothing persisted.
	generationReq := TemplateGenerationRequest{
		JobTitle:       job.Title,
		JobDescription: job.Description,
		FocusSkills:    req.FocusSkills,
		Difficulty:     req.Difficulty,
		QuestionCount:  req.QuestionCount,
	}
	generated, err := s.gemini.GenerateTemplate(ctx, generationReq)
	if err != nil {
		log.Error().Err(err).Uint("jobID", req.JobID).Msg("CreateTemplate: AI template generation failed")
		return nil, apperror.ExternalProvider("AI template generation failed", err)
	}
	if len(generated.Questions) != req.QuestionCount {
		log.Warn().Int("requested", req.QuestionCount).Int("got", len(generated.Questions)).Msg("CreateTemplate: AI returned wrong question count")
		return nil, apperror.ExternalProvider("AI returned a malformed question set", nil)
	}

	promptSettings, err := json.Marshal(generationReq)
	if err != nil {
		return nil, apperror.Persistence("failed to encode prompt settings", err)
	}

	template := model.InterviewTemplate{
		RecruiterID:      recruiterID,
		JobID:            job.ID,
		Title:            req.Title,
		TimeLimitMinutes: generated.TimeLimitMinutes,
		PromptSettings:   promptSettings,
	}
	for i, q := range generated.Questions {
		template.Questions = append(template.Questions, model.InterviewQuestion{
			OrderInTemplate: i + 1,
			QuestionText:    q.QuestionText,
			IdealAnswer:     q.IdealAnswer,
			QuestionType:    q.QuestionType,
		})
	}

	// Header plus all question rows in one transaction; a partial template is
	// never visible.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.templateRepo.WithTx(tx).Create(&template)
	})
	if err != nil {
		log.Error().Err(err).Uint("jobID", req.JobID).Msg("CreateTemplate: failed to persist template")
		return nil, apperror.Persistence("failed to persist interview template", err)
	}

	log.Info().Uint("templateID", template.ID).Uint("jobID", job.ID).Int("questions", len(template.Questions)).Msg("Interview template created")
	return templateToDetailDTO(&template), nil
}

func (s *templateService) ListTemplates(recruiterID uint, jobID *uint) ([]dto.TemplateSummaryDTO, error) {
	templates, err := s.templateRepo.FindAllByRecruiterWithQuestionCount(recruiterID, jobID)
	if err != nil {
		log.Error().Err(err).Uint("recruiterID", recruiterID).Msg("ListTemplates: repository error")
		return nil, apperror.Persistence("failed to list templates", err)
	}

	dtos := make([]dto.TemplateSummaryDTO, 0, len(templates))
	for _, t := range templates {
		dtos = append(dtos, dto.TemplateSummaryDTO{
			ID:               t.ID,
			JobID:            t.JobID,
			Title:            t.Title,
			TimeLimitMinutes: t.TimeLimitMinutes,
			QuestionCount:    t.QuestionCount,
			CreatedAt:        t.CreatedAt,
		})
	}
	return dtos, nil
}

func templateToDetailDTO(template *model.InterviewTemplate) *dto.TemplateResponseDTO {
	var resp dto.TemplateResponseDTO
	if err := copier.Copy(&resp, template); err != nil {
		log.Error().Err(err).Msg("templateToDetailDTO: copier failed, falling back to manual mapping")
	}
	resp.Questions = make([]dto.QuestionDetailDTO, 0, len(template.Questions))
	for _, q := range template.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionDetailDTO{
			ID:              q.ID,
			OrderInTemplate: q.OrderInTemplate,
			QuestionText:    q.QuestionText,
			IdealAnswer:     q.IdealAnswer,
			QuestionType:    q.QuestionType,
		})
	}
	return &resp
}

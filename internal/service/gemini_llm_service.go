package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/huyphan2705/hireflow/config"
)

// TemplateGenerationRequest carries everything the model needs to draft an
// interview for a job.
type TemplateGenerationRequest struct {
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	FocusSkills    []string `json:"focus_skills"`
	Difficulty     string   `json:"difficulty"`
	QuestionCount  int      `json:"question_count"`
}

type GeneratedQuestion struct {
	QuestionText string `json:"question_text"`
	IdealAnswer  string `json:"ideal_answer"`
	QuestionType string `json:"question_type"`
}

type GeneratedTemplate struct {
	TimeLimitMinutes int                 `json:"time_limit_minutes"`
	Questions        []GeneratedQuestion `json:"questions"`
}

type AnswerEvaluation struct {
	Score      float64 `json:"score"`
	Evaluation string  `json:"evaluation"`
}

// QuestionResult is one graded answer fed into the overall evaluation.
type QuestionResult struct {
	QuestionText string  `json:"question_text"`
	AnswerText   string  `json:"answer_text"`
	Score        float64 `json:"score"`
	Evaluation   string  `json:"evaluation"`
}

type OverallEvaluation struct {
	OverallScore float64 `json:"overall_score"`
	Evaluation   string  `json:"evaluation"`
}

// GeminiLLMService wraps the three AI operations of the interview pipeline.
type GeminiLLMService interface {
	GenerateTemplate(ctx context.Context, req TemplateGenerationRequest) (*GeneratedTemplate, error)
	ScoreAnswer(ctx context.Context, questionText, idealAnswer, answerText string) (*AnswerEvaluation, error)
	EvaluateOverall(ctx context.Context, jobTitle string, results []QuestionResult) (*OverallEvaluation, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	return &geminiLLMService{client: model, cfg: cfg}, nil
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func extractJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.LastIndex(trimmed, "```"); idx != -1 {
			trimmed = trimmed[:idx]
		}
	}
	return strings.TrimSpace(trimmed)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (s *geminiLLMService) generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	fullText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullText += string(txt)
		}
	}
	if fullText == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return fullText, nil
}

func (s *geminiLLMService) GenerateTemplate(ctx context.Context, req TemplateGenerationRequest) (*GeneratedTemplate, error) {
	var b strings.Builder
	b.WriteString("You are a senior technical recruiter designing a written screening interview.\n")
	b.WriteString(fmt.Sprintf("Draft an interview for the position below, targeted at a %s-level candidate.\n\n", req.Difficulty))
	b.WriteString("Job Title:\n")
	b.WriteString(req.JobTitle)
	b.WriteString("\n\nJob Description:\n---\n")
	b.WriteString(req.JobDescription)
	b.WriteString("\n---\n\n")
	b.WriteString(fmt.Sprintf("Focus the questions on these skills: %s.\n", strings.Join(req.FocusSkills, ", ")))
	b.WriteString(fmt.Sprintf("Produce exactly %d questions. ", req.QuestionCount))
	b.WriteString("For each question write an ideal answer: the reference a grader will compare candidate answers against. ")
	b.WriteString("Classify each question as \"technical\", \"behavioral\", or \"situational\". ")
	b.WriteString("Also pick a reasonable time limit in minutes for the full interview.\n\n")
	b.WriteString("Respond with ONLY a JSON object in exactly this shape, no prose around it:\n")
	b.WriteString(`{"time_limit_minutes": 45, "questions": [{"question_text": "...", "ideal_answer": "...", "question_type": "technical"}]}`)
	b.WriteString("\n")

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Str("jobTitle", req.JobTitle).Msg("GenerateTemplate: Gemini call failed")
		return nil, err
	}

	var generated GeneratedTemplate
	if err := json.Unmarshal([]byte(extractJSON(raw)), &generated); err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("GenerateTemplate: failed to parse Gemini JSON output")
		return nil, fmt.Errorf("failed to parse template generation response: %w", err)
	}
	if len(generated.Questions) == 0 {
		return nil, fmt.Errorf("template generation response contained no questions")
	}
	if generated.TimeLimitMinutes <= 0 {
		generated.TimeLimitMinutes = 10 * len(generated.Questions)
	}
	for i, q := range generated.Questions {
		if strings.TrimSpace(q.QuestionText) == "" || strings.TrimSpace(q.IdealAnswer) == "" {
			return nil, fmt.Errorf("generated question %d is missing text or ideal answer", i+1)
		}
	}
	return &generated, nil
}

func (s *geminiLLMService) ScoreAnswer(ctx context.Context, questionText, idealAnswer, answerText string) (*AnswerEvaluation, error) {
	var b strings.Builder
	b.WriteString("You are grading one written answer from a screening interview.\n\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(questionText)
	b.WriteString("\n---\n\nReference answer (grading rubric, not shown to the candidate):\n---\n")
	b.WriteString(idealAnswer)
	b.WriteString("\n---\n\nCandidate's answer:\n---\n")
	b.WriteString(answerText)
	b.WriteString("\n---\n\n")
	b.WriteString("Score the candidate's answer from 0 to 100 against the reference answer, ")
	b.WriteString("rewarding correct substance over phrasing. An empty answer scores 0. ")
	b.WriteString("Write a short evaluation naming what was right and what was missing or wrong.\n\n")
	b.WriteString("Respond with ONLY a JSON object in exactly this shape, no prose around it:\n")
	b.WriteString(`{"score": 72.5, "evaluation": "..."}`)
	b.WriteString("\n")

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		return nil, err
	}

	var evaluation AnswerEvaluation
	if err := json.Unmarshal([]byte(extractJSON(raw)), &evaluation); err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("ScoreAnswer: failed to parse Gemini JSON output")
		return nil, fmt.Errorf("failed to parse answer scoring response: %w", err)
	}
	evaluation.Score = clampScore(evaluation.Score)
	return &evaluation, nil
}

func (s *geminiLLMService) EvaluateOverall(ctx context.Context, jobTitle string, results []QuestionResult) (*OverallEvaluation, error) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode per-question results: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are writing the final assessment of a candidate's screening interview ")
	b.WriteString(fmt.Sprintf("for the position %q.\n\n", jobTitle))
	b.WriteString("Per-question results (already graded):\n---\n")
	b.Write(resultsJSON)
	b.WriteString("\n---\n\n")
	b.WriteString("Produce an overall score from 0 to 100 consistent with the per-question scores, ")
	b.WriteString("and an overall evaluation summarizing strengths, weaknesses, and a hiring recommendation.\n\n")
	b.WriteString("Respond with ONLY a JSON object in exactly this shape, no prose around it:\n")
	b.WriteString(`{"overall_score": 68, "evaluation": "..."}`)
	b.WriteString("\n")

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		return nil, err
	}

	var overall OverallEvaluation
	if err := json.Unmarshal([]byte(extractJSON(raw)), &overall); err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("EvaluateOverall: failed to parse Gemini JSON output")
		return nil, fmt.Errorf("failed to parse overall evaluation response: %w", err)
	}
	overall.OverallScore = clampScore(overall.OverallScore)
	return &overall, nil
}

package dto

import "time"

// QuestionPublicDTO is the candidate-facing projection of an interview
// question. It intentionally has no ideal-answer field.
type QuestionPublicDTO struct {
	ID              uint   `json:"id"`
	OrderInTemplate int    `json:"order_in_template"`
	QuestionText    string `json:"question_text"`
	QuestionType    string `json:"question_type"`
}

// QuestionDetailDTO is the recruiter-facing projection including the grading
// rubric.
type QuestionDetailDTO struct {
	ID              uint   `json:"id"`
	OrderInTemplate int    `json:"order_in_template"`
	QuestionText    string `json:"question_text"`
	IdealAnswer     string `json:"ideal_answer"`
	QuestionType    string `json:"question_type"`
}

// TemplateResponseDTO is returned to the recruiter after template creation,
// including the generated questions for preview.
type TemplateResponseDTO struct {
	ID               uint                `json:"id"`
	JobID            uint                `json:"job_id"`
	Title            string              `json:"title"`
	TimeLimitMinutes int                 `json:"time_limit_minutes"`
	Questions        []QuestionDetailDTO `json:"questions,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// TemplateSummaryDTO is used when listing a recruiter's templates.
type TemplateSummaryDTO struct {
	ID               uint      `json:"id"`
	JobID            uint      `json:"job_id"`
	Title            string    `json:"title"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

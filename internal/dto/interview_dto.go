package dto

import "time"

// InterviewHeaderDTO is the candidate's view of their interview before and
// after taking it. Scores and evaluations are recruiter-side only.
type InterviewHeaderDTO struct {
	ID               uint       `json:"id"`
	ApplicationID    uint       `json:"application_id"`
	TemplateID       uint       `json:"template_id"`
	Status           string     `json:"status"`
	RecruiterMessage string     `json:"recruiter_message,omitempty"`
	TimeLimitMinutes int        `json:"time_limit_minutes"`
	TimeStarted      *time.Time `json:"time_started,omitempty"`
	TimeSubmitted    *time.Time `json:"time_submitted,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// InterviewSessionDTO is returned from start: the questions (public
// projection), the time limit, and when the clock started.
type InterviewSessionDTO struct {
	InterviewID      uint                `json:"interview_id"`
	Status           string              `json:"status"`
	TimeLimitMinutes int                 `json:"time_limit_minutes"`
	TimeStarted      time.Time           `json:"time_started"`
	Questions        []QuestionPublicDTO `json:"questions"`
}

// InterviewSummaryDTO is one row of the recruiter's results list.
type InterviewSummaryDTO struct {
	ID            uint       `json:"id"`
	ApplicationID uint       `json:"application_id"`
	CandidateID   uint       `json:"candidate_id"`
	TemplateID    uint       `json:"template_id"`
	TemplateTitle string     `json:"template_title,omitempty"`
	JobID         uint       `json:"job_id"`
	Status        string     `json:"status"`
	TimeSubmitted *time.Time `json:"time_submitted,omitempty"`
	OverallScore  *float64   `json:"overall_score,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AnswerReviewDTO pairs a question (with rubric) with the candidate's answer
// and its AI evaluation, for the recruiter's side-by-side view.
type AnswerReviewDTO struct {
	Question     QuestionDetailDTO `json:"question"`
	AnswerText   string            `json:"answer_text"`
	AIScore      *float64          `json:"ai_score,omitempty"`
	AIEvaluation string            `json:"ai_evaluation,omitempty"`
}

// InterviewResultDetailDTO is the recruiter's full result view.
type InterviewResultDetailDTO struct {
	ID                  uint              `json:"id"`
	ApplicationID       uint              `json:"application_id"`
	CandidateID         uint              `json:"candidate_id"`
	TemplateID          uint              `json:"template_id"`
	TemplateTitle       string            `json:"template_title,omitempty"`
	JobID               uint              `json:"job_id"`
	Status              string            `json:"status"`
	RecruiterMessage    string            `json:"recruiter_message,omitempty"`
	TimeStarted         *time.Time        `json:"time_started,omitempty"`
	TimeSubmitted       *time.Time        `json:"time_submitted,omitempty"`
	OverallScore        *float64          `json:"overall_score,omitempty"`
	AIOverallEvaluation string            `json:"ai_overall_evaluation,omitempty"`
	Answers             []AnswerReviewDTO `json:"answers"`
}

package dto

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GradingAcceptedDTO acknowledges that a grading run has been started. The
// run itself completes in the background; callers observe the outcome by
// re-reading the interview.
type GradingAcceptedDTO struct {
	InterviewID uint   `json:"interview_id"`
	Status      string `json:"status"`
	RunID       string `json:"run_id"`
}

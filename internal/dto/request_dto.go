package dto

// TemplateCreateDTO is the recruiter request to generate a new interview
// template for a job.
type TemplateCreateDTO struct {
	JobID         uint     `json:"job_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	FocusSkills   []string `json:"focus_skills" binding:"required,min=1"`
	QuestionCount int      `json:"question_count" binding:"required,min=1,max=20"`
	Difficulty    string   `json:"difficulty" binding:"required,oneof=junior mid senior"`
}

// InviteCreateDTO links a template to a job application.
type InviteCreateDTO struct {
	ApplicationID uint   `json:"application_id" binding:"required"`
	TemplateID    uint   `json:"template_id" binding:"required"`
	Message       string `json:"message"`
}

// AnswerSubmitDTO is one answer within a full interview submission. Blank
// answer text is accepted and stored as-is.
type AnswerSubmitDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text"`
}

// InterviewSubmitDTO is the candidate's full submission.
type InterviewSubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

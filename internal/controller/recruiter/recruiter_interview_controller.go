package recruiter

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/huyphan2705/hireflow/internal/controller"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/service"
)

type RecruiterInterviewController struct {
	templateService   service.TemplateService
	invitationService service.InvitationService
	gradingService    service.GradingService
	resultService     service.ResultService
}

func NewRecruiterInterviewController(
	templateService service.TemplateService,
	invitationService service.InvitationService,
	gradingService service.GradingService,
	resultService service.ResultService,
) *RecruiterInterviewController {
	return &RecruiterInterviewController{
		templateService:   templateService,
		invitationService: invitationService,
		gradingService:    gradingService,
		resultService:     resultService,
	}
}

// CreateTemplate godoc
// @Summary (Recruiter) Generate an interview template for a job
// @Description Drafts a question set, rubric, and time limit with the AI provider and persists it atomically.
// @Tags Recruiter - Interviews
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Recruiter ID (set by gateway)"
// @Param template body dto.TemplateCreateDTO true "Generation parameters"
// @Success 201 {object} dto.TemplateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Job not owned by recruiter"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 502 {object} dto.ErrorResponse "AI provider failure"
// @Router /recruiter/templates [post]
func (c *RecruiterInterviewController) CreateTemplate(ctx *gin.Context) {
	var req dto.TemplateCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTemplate: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	template, err := c.templateService.CreateTemplate(ctx.Request.Context(), controller.ActorID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, template)
}

// ListTemplates godoc
// @Summary (Recruiter) List own interview templates
// @Tags Recruiter - Interviews
// @Produce json
// @Param X-Actor-ID header int true "Recruiter ID (set by gateway)"
// @Param job_id query int false "Filter by job"
// @Success 200 {array} dto.TemplateSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid job_id"
// @Router /recruiter/templates [get]
func (c *RecruiterInterviewController) ListTemplates(ctx *gin.Context) {
	var jobID *uint
	if raw := ctx.Query("job_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid job_id format"})
			return
		}
		id := uint(val)
		jobID = &id
	}

	templates, err := c.templateService.ListTemplates(controller.ActorID(ctx), jobID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, templates)
}

// SendInvite godoc
// @Summary (Recruiter) Invite an applicant to an interview
// @Description Creates the interview instance and marks the application as interview_sent, atomically.
// @Tags Recruiter - Interviews
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Recruiter ID (set by gateway)"
// @Param invite body dto.InviteCreateDTO true "Application and template to link"
// @Success 201 {object} dto.InterviewHeaderDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Job not owned by recruiter"
// @Failure 409 {object} dto.ErrorResponse "Duplicate invite or wrong application status"
// @Router /recruiter/invitations [post]
func (c *RecruiterInterviewController) SendInvite(ctx *gin.Context) {
	var req dto.InviteCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SendInvite: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	interview, err := c.invitationService.SendInvite(controller.ActorID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, interview)
}

// RequestGrading godoc
// @Summary (Recruiter) Trigger AI grading of a submitted interview
// @Description Accepts the request and grades in the background. Re-read the interview to observe the outcome.
// @Tags Recruiter - Interviews
// @Produce json
// @Param X-Actor-ID header int true "Recruiter ID (set by gateway)"
// @Param interview_id path int true "Interview ID"
// @Success 202 {object} dto.GradingAcceptedDTO
// @Failure 403 {object} dto.ErrorResponse "Interview not owned by recruiter"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview not in submitted status (e.g. grading already in flight)"
// @Router /recruiter/interviews/{interview_id}/grade [post]
func (c *RecruiterInterviewController) RequestGrading(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID format"})
		return
	}

	accepted, err := c.gradingService.RequestGrading(controller.ActorID(ctx), uint(interviewID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, accepted)
}

// ListResults godoc
// @Summary (Recruiter) List interview results
// @Description Interviews for the recruiter's jobs in submitted, grading, or graded state, ordered by status then recency.
// @Tags Recruiter - Interviews
// @Produce json
// @Param X-Actor-ID header int true "Recruiter ID (set by gateway)"
// @Success 200 {array} dto.InterviewSummaryDTO
// @Router /recruiter/results [get]
func (c *RecruiterInterviewController) ListResults(ctx *gin.Context) {
	results, err := c.resultService.ListResults(controller.ActorID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResultDetail godoc
// @Summary (Recruiter) Full side-by-side result of one interview
// @Tags Recruiter - Interviews
// @Produce json
// @Param X-Actor-ID header int true "Recruiter ID (set by gateway)"
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResultDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Interview not owned by recruiter"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /recruiter/results/{interview_id} [get]
func (c *RecruiterInterviewController) GetResultDetail(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID format"})
		return
	}

	detail, err := c.resultService.GetResultDetail(controller.ActorID(ctx), uint(interviewID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

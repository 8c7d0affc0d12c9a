package candidate

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/huyphan2705/hireflow/internal/controller"
	"github.com/huyphan2705/hireflow/internal/dto"
	"github.com/huyphan2705/hireflow/internal/service"
)

type CandidateInterviewController struct {
	sessionService service.SessionService
}

func NewCandidateInterviewController(sessionService service.SessionService) *CandidateInterviewController {
	return &CandidateInterviewController{sessionService: sessionService}
}

// GetInterview godoc
// @Summary (Candidate) View own interview header
// @Description Status, time limit, and recruiter message. No questions, no state change.
// @Tags Candidate - Interviews
// @Produce json
// @Param X-Actor-ID header int true "Candidate ID (set by gateway)"
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewHeaderDTO
// @Failure 403 {object} dto.ErrorResponse "Interview not owned by candidate"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id} [get]
func (c *CandidateInterviewController) GetInterview(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID format"})
		return
	}

	header, err := c.sessionService.GetInterview(controller.ActorID(ctx), uint(interviewID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, header)
}

// StartInterview godoc
// @Summary (Candidate) Start or resume an interview
// @Description First call stamps the start time; repeated calls return the original stamp unchanged. Questions carry no rubric.
// @Tags Candidate - Interviews
// @Produce json
// @Param X-Actor-ID header int true "Candidate ID (set by gateway)"
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewSessionDTO
// @Failure 403 {object} dto.ErrorResponse "Interview not owned by candidate"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview already submitted"
// @Router /interviews/{interview_id}/start [post]
func (c *CandidateInterviewController) StartInterview(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID format"})
		return
	}

	session, err := c.sessionService.StartInterview(controller.ActorID(ctx), uint(interviewID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SubmitInterview godoc
// @Summary (Candidate) Submit all answers for an interview
// @Description Accepts the full answer set in one transaction. Late submissions are accepted (soft limit). Blank answers are stored.
// @Tags Candidate - Interviews
// @Accept json
// @Produce json
// @Param X-Actor-ID header int true "Candidate ID (set by gateway)"
// @Param interview_id path int true "Interview ID"
// @Param submission body dto.InterviewSubmitDTO true "Answers"
// @Success 200 {object} dto.InterviewHeaderDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown question"
// @Failure 403 {object} dto.ErrorResponse "Interview not owned by candidate"
// @Failure 409 {object} dto.ErrorResponse "Not started yet or already submitted"
// @Router /interviews/{interview_id}/submit [post]
func (c *CandidateInterviewController) SubmitInterview(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interview ID format"})
		return
	}

	var req dto.InterviewSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitInterview: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	header, err := c.sessionService.SubmitInterview(controller.ActorID(ctx), uint(interviewID), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, header)
}

package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// CheckAttempt godoc
// @Summary Check whether a quiz was already attempted
// @Description Mock quizzes always report not attempted. An unknown quiz also reports not attempted.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param body body dto.AttemptCheckDTO true "Quiz and PRN to check"
// @Success 200 {object} dto.AttemptCheckResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attempts/check [post]
func (c *AttemptController) CheckAttempt(ctx *gin.Context) {
	var req dto.AttemptCheckDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempted, err := c.attemptService.CheckAttempt(req.QuizID, req.PRN)
	if err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Str("prn", req.PRN).Msg("CheckAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to check attempt"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AttemptCheckResponseDTO{Attempted: attempted})
}

// SubmitAttempt godoc
// @Summary Submit a quiz attempt
// @Description Recomputes the score server-side and records the result. A duplicate submission for a non-mock quiz returns success=false.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param body body dto.AttemptSubmitDTO true "Answers, plus termination_reason when forced by the proctoring relay"
// @Success 201 {object} dto.SubmitResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.SubmitResponseDTO "Duplicate submission"
// @Router /attempts [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	authCtx, ok := auth.FromGin(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.attemptService.Submit(ctx.Request.Context(), authCtx, req)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Str("prn", authCtx.PRN).Msg("SubmitAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt"})
		return
	}

	if !resp.Success {
		ctx.JSON(http.StatusConflict, resp)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Description Validates the schedule window and answer-key option bounds before persisting.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param body body dto.QuizCreateDTO true "Quiz with questions"
// @Success 201 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateQuiz: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// ListQuizzes godoc
// @Summary (Admin) List all quizzes
// @Tags Admin - Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/quizzes [get]
func (c *AdminQuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.adminQuizService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and its results
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "quiz_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID"})
		return
	}

	if err := c.adminQuizService.DeleteQuiz(quizID); err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Admin DeleteQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete quiz"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetReport godoc
// @Summary (Admin) Aggregated submission report for a quiz
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizReportDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{quiz_id}/report [get]
func (c *AdminQuizController) GetReport(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "quiz_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID"})
		return
	}

	report, err := c.adminQuizService.GetReport(quizID)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Admin GetReport: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build report"})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	return uint(val), err
}

package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GetQuizzes godoc
// @Summary List quizzes visible to the authenticated student
// @Description Quizzes filtered by the student's category lock and target-year filter, annotated with schedule state.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	authCtx, ok := auth.FromGin(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	quizzes, err := c.quizService.ListQuizzes(authCtx)
	if err != nil {
		log.Error().Err(err).Str("prn", authCtx.PRN).Msg("GetQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Get quiz details
// @Description Full quiz with questions. Answer-key fields are stripped unless the quiz is a mock quiz.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "quiz_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID"})
		return
	}

	quiz, err := c.quizService.GetQuiz(quizID)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	return uint(val), err
}

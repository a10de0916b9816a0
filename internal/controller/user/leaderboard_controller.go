package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
)

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardController(leaderboardService service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Ranked results for a quiz
// @Description Full result list ordered by score descending, submission time ascending. Safe to poll.
// @Tags Leaderboard
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.LeaderboardDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /leaderboard/{quiz_id} [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "quiz_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID"})
		return
	}

	lb, err := c.leaderboardService.GetLeaderboard(ctx.Request.Context(), quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, lb)
}

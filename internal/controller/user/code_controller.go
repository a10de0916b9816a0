package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
)

type CodeController struct {
	codeRunner service.CodeRunnerService
}

func NewCodeController(codeRunner service.CodeRunnerService) *CodeController {
	return &CodeController{codeRunner: codeRunner}
}

// RunCode godoc
// @Summary Execute code through the external execution service
// @Description Passthrough: proxies one run and returns stdout/stderr verbatim.
// @Tags Code
// @Accept json
// @Produce json
// @Param body body dto.RunCodeDTO true "Language, source code and stdin"
// @Success 200 {object} dto.RunCodeResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /run-code [post]
func (c *CodeController) RunCode(ctx *gin.Context) {
	var req dto.RunCodeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.codeRunner.Execute(ctx.Request.Context(), req.Language, req.SourceCode, req.Input)
	if err != nil {
		log.Warn().Err(err).Str("language", req.Language).Msg("RunCode: execution service call failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Execution service unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RunTests godoc
// @Summary Run submitted code against a set of test cases
// @Description Cases run sequentially, one execution call per case. A failed call records an Execution Error for that case only.
// @Tags Code
// @Accept json
// @Produce json
// @Param body body dto.RunTestsDTO true "Language, source code and test cases"
// @Success 200 {object} dto.RunTestsResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /run-tests [post]
func (c *CodeController) RunTests(ctx *gin.Context) {
	var req dto.RunTestsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	cases := make([]model.TestCase, 0, len(req.TestCases))
	for _, tc := range req.TestCases {
		cases = append(cases, model.TestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
	}

	outcomes := c.codeRunner.RunTestCases(ctx.Request.Context(), req.Language, req.SourceCode, cases)

	resp := dto.RunTestsResponseDTO{
		Outcomes: make([]dto.TestCaseOutcomeDTO, 0, len(outcomes)),
		Passed:   len(outcomes) > 0,
	}
	for _, o := range outcomes {
		if o.Status != service.OutcomePassed {
			resp.Passed = false
		}
		resp.Outcomes = append(resp.Outcomes, dto.TestCaseOutcomeDTO{
			Input:          o.Input,
			ExpectedOutput: o.ExpectedOutput,
			ActualOutput:   o.ActualOutput,
			Status:         o.Status,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

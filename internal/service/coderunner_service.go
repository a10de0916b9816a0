package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/rs/zerolog/log"
)

// Test-case outcome statuses.
const (
	OutcomePassed         = "Passed"
	OutcomeFailed         = "Failed"
	OutcomeExecutionError = "Execution Error"
)

// TestCaseOutcome is the result of running one test case through the
// execution service.
type TestCaseOutcome struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	ActualOutput   string `json:"actual_output"`
	Status         string `json:"status"`
}

// CodeRunnerService wraps the third-party execution API. It is a thin
// adapter: no batching, no retries, one synchronous HTTP call per run.
type CodeRunnerService interface {
	Execute(ctx context.Context, language, sourceCode, input string) (*dto.RunCodeResponseDTO, error)
	RunTestCases(ctx context.Context, language, sourceCode string, cases []model.TestCase) []TestCaseOutcome
}

type codeRunnerService struct {
	client *resty.Client
	cfg    *config.Config
}

func NewCodeRunnerService(cfg *config.Config) CodeRunnerService {
	client := resty.New().
		SetBaseURL(cfg.CodeRunner.URL).
		SetTimeout(15 * time.Second)
	if cfg.CodeRunner.APIKey != "" {
		client.SetHeader("Authorization", cfg.CodeRunner.APIKey)
	}
	return &codeRunnerService{client: client, cfg: cfg}
}

type executeRequest struct {
	Language string        `json:"language"`
	Version  string        `json:"version"`
	Files    []executeFile `json:"files"`
	Stdin    string        `json:"stdin"`
}

type executeFile struct {
	Content string `json:"content"`
}

type executeResponse struct {
	Run struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Output string `json:"output"`
		Code   int    `json:"code"`
	} `json:"run"`
	Message string `json:"message"`
}

// Execute proxies one run to the execution service and returns its output
// verbatim.
func (s *codeRunnerService) Execute(ctx context.Context, language, sourceCode, input string) (*dto.RunCodeResponseDTO, error) {
	var result executeResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(executeRequest{
			Language: language,
			Version:  "*",
			Files:    []executeFile{{Content: sourceCode}},
			Stdin:    input,
		}).
		SetResult(&result).
		Post("/execute")
	if err != nil {
		return nil, fmt.Errorf("execution service unreachable: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("execution service returned status %d: %s", resp.StatusCode(), result.Message)
	}

	return &dto.RunCodeResponseDTO{
		Stdout:   result.Run.Stdout,
		Stderr:   result.Run.Stderr,
		Output:   result.Run.Output,
		ExitCode: result.Run.Code,
	}, nil
}

// RunTestCases executes the cases sequentially, one call per case. A failed
// call is recorded as an Execution Error outcome for that case only and
// never aborts the remaining cases.
func (s *codeRunnerService) RunTestCases(ctx context.Context, language, sourceCode string, cases []model.TestCase) []TestCaseOutcome {
	outcomes := make([]TestCaseOutcome, 0, len(cases))
	for _, tc := range cases {
		outcome := TestCaseOutcome{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		}

		run, err := s.Execute(ctx, language, sourceCode, tc.Input)
		if err != nil {
			log.Warn().Err(err).Uint("testCaseID", tc.ID).Msg("RunTestCases: execution call failed")
			outcome.Status = OutcomeExecutionError
			outcomes = append(outcomes, outcome)
			continue
		}

		outcome.ActualOutput = run.Stdout
		if strings.TrimSpace(run.Stdout) == strings.TrimSpace(tc.ExpectedOutput) {
			outcome.Status = OutcomePassed
		} else {
			outcome.Status = OutcomeFailed
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

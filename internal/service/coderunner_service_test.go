package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner mimics the execution service: it "adds" the two integers only
// for inputs it knows, and returns HTTP 500 for the input "boom".
func fakeRunner(t *testing.T) *httptest.Server {
	t.Helper()
	outputs := map[string]string{
		"1 2": "3\n",
		"5 7": "12\n",
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/execute", r.URL.Path)

		var req struct {
			Language string `json:"language"`
			Stdin    string `json:"stdin"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Stdin == "boom" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "runtime unavailable"})
			return
		}

		stdout := outputs[req.Stdin]
		json.NewEncoder(w).Encode(map[string]any{
			"run": map[string]any{
				"stdout": stdout,
				"stderr": "",
				"output": stdout,
				"code":   0,
			},
		})
	}))
}

func newRunner(url string) service.CodeRunnerService {
	cfg := &config.Config{}
	cfg.CodeRunner.URL = url
	return service.NewCodeRunnerService(cfg)
}

func TestExecutePassthrough(t *testing.T) {
	srv := fakeRunner(t)
	defer srv.Close()

	runner := newRunner(srv.URL)
	resp, err := runner.Execute(context.Background(), "python", "print(sum(map(int, input().split())))", "1 2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", resp.Stdout)
	assert.Equal(t, 0, resp.ExitCode)
}

func TestExecuteUpstreamError(t *testing.T) {
	srv := fakeRunner(t)
	defer srv.Close()

	runner := newRunner(srv.URL)
	_, err := runner.Execute(context.Background(), "python", "whatever", "boom")
	assert.Error(t, err)
}

func TestRunTestCasesSequentialWithPerCaseErrors(t *testing.T) {
	srv := fakeRunner(t)
	defer srv.Close()

	runner := newRunner(srv.URL)
	cases := []model.TestCase{
		{Input: "1 2", ExpectedOutput: "3"},
		{Input: "boom", ExpectedOutput: "0"},
		{Input: "5 7", ExpectedOutput: "12"},
	}

	outcomes := runner.RunTestCases(context.Background(), "python", "src", cases)
	require.Len(t, outcomes, 3)

	// Trailing whitespace in stdout does not fail a case.
	assert.Equal(t, service.OutcomePassed, outcomes[0].Status)
	// The failed call is recorded for its case only; later cases still ran.
	assert.Equal(t, service.OutcomeExecutionError, outcomes[1].Status)
	assert.Equal(t, service.OutcomePassed, outcomes[2].Status)
}

func TestRunTestCasesWrongOutputFails(t *testing.T) {
	srv := fakeRunner(t)
	defer srv.Close()

	runner := newRunner(srv.URL)
	outcomes := runner.RunTestCases(context.Background(), "python", "src", []model.TestCase{
		{Input: "1 2", ExpectedOutput: "4"},
	})
	require.Len(t, outcomes, 1)
	assert.Equal(t, service.OutcomeFailed, outcomes[0].Status)
	assert.Equal(t, "3\n", outcomes[0].ActualOutput)
}

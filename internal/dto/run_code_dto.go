package dto

// RunCodeDTO is the passthrough payload for the external execution service.
type RunCodeDTO struct {
	Language   string `json:"language" binding:"required"`
	SourceCode string `json:"source_code" binding:"required"`
	Input      string `json:"input"`
}

// RunCodeResponseDTO carries the execution service's output verbatim.
type RunCodeResponseDTO struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	Output   string `json:"output"`
	ExitCode int    `json:"exit_code"`
}

type TestCaseRunDTO struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output" binding:"required"`
}

// RunTestsDTO runs one source against a list of test cases, sequentially.
type RunTestsDTO struct {
	Language   string           `json:"language" binding:"required"`
	SourceCode string           `json:"source_code" binding:"required"`
	TestCases  []TestCaseRunDTO `json:"test_cases" binding:"required,min=1,dive"`
}

type TestCaseOutcomeDTO struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	ActualOutput   string `json:"actual_output"`
	Status         string `json:"status"` // "Passed", "Failed", "Execution Error"
}

// RunTestsResponseDTO summarizes a test-case run. Passed is true only when
// every case passed; clients feed it back as the code answer's passed flag.
type RunTestsResponseDTO struct {
	Outcomes []TestCaseOutcomeDTO `json:"outcomes"`
	Passed   bool                 `json:"passed"`
}

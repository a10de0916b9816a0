package dto

import "time"

// OptionCreateDTO is used within QuestionCreateDTO for admin quiz creation.
type OptionCreateDTO struct {
	Text     string  `json:"text" binding:"required"`
	ImageURL *string `json:"image_url"`
}

type TestCaseCreateDTO struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output" binding:"required"`
}

type QuestionCreateDTO struct {
	Text        string `json:"text" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=mcq code"`
	Marks       int    `json:"marks" binding:"required,gt=0"`
	OrderInQuiz int    `json:"order_in_quiz" binding:"required,min=1"`

	MultiSelect    bool              `json:"multi_select"`
	Options        []OptionCreateDTO `json:"options" binding:"omitempty,dive"`
	CorrectOptions []int             `json:"correct_options"`
	Explanation    string            `json:"explanation"`

	TestCases []TestCaseCreateDTO `json:"test_cases" binding:"omitempty,dive"`
}

// QuizCreateDTO is for admin to create a new quiz with all its questions.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Category    string              `json:"category"`
	QuizType    string              `json:"quiz_type" binding:"required,oneof=weekly practice mock"`
	StartTime   *time.Time          `json:"start_time"`
	EndTime     *time.Time          `json:"end_time"`
	TargetYears []string            `json:"target_years"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type StudentCreateDTO struct {
	Name     string `json:"name" binding:"required"`
	PRN      string `json:"prn" binding:"required"`
	Year     string `json:"year" binding:"required"`
	Branch   string `json:"branch"`
	Category string `json:"category"`
}

type StudentDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	PRN      string `json:"prn"`
	Year     string `json:"year"`
	Branch   string `json:"branch"`
	Category string `json:"category"`
}

// QuizReportDTO aggregates submission outcomes for one quiz.
type QuizReportDTO struct {
	QuizID       uint    `json:"quiz_id"`
	Title        string  `json:"title"`
	Attempts     int64   `json:"attempts"`
	AverageScore float64 `json:"average_score"`
	HighestScore int     `json:"highest_score"`
	Completed    int64   `json:"completed"`
	Terminated   int64   `json:"terminated"`
}

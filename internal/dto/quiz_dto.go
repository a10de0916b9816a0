package dto

import "time"

// OptionDTO is an answer option as shown to students. Whether an option is
// correct is never exposed here; the key lives on the question DTO and is
// stripped for non-mock quizzes.
type OptionDTO struct {
	ID              uint    `json:"id"`
	Text            string  `json:"text"`
	ImageURL        *string `json:"image_url,omitempty"`
	OrderInQuestion int     `json:"order_in_question"`
}

type TestCaseDTO struct {
	ID             uint   `json:"id"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// QuestionDTO is a question as transmitted to clients. CorrectOptions and
// Explanation are answer-key fields and are omitted unless the quiz is a
// mock (unlimited-retake practice) quiz.
type QuestionDTO struct {
	ID             uint          `json:"id"`
	Text           string        `json:"text"`
	Type           string        `json:"type"`
	Marks          int           `json:"marks"`
	OrderInQuiz    int           `json:"order_in_quiz"`
	MultiSelect    bool          `json:"multi_select"`
	Options        []OptionDTO   `json:"options,omitempty"`
	TestCases      []TestCaseDTO `json:"test_cases,omitempty"`
	CorrectOptions []int         `json:"correct_options,omitempty"`
	Explanation    string        `json:"explanation,omitempty"`
}

// QuizDetailDTO is the full quiz payload a student fetches before an attempt.
type QuizDetailDTO struct {
	ID            uint          `json:"id"`
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	QuizType      string        `json:"quiz_type"`
	StartTime     *time.Time    `json:"start_time,omitempty"`
	EndTime       *time.Time    `json:"end_time,omitempty"`
	TargetYears   []string      `json:"target_years,omitempty"`
	ScheduleState string        `json:"schedule_state"`
	TotalMarks    int           `json:"total_marks"`
	Questions     []QuestionDTO `json:"questions,omitempty"`
}

// QuizSummaryDTO is used for quiz listings.
type QuizSummaryDTO struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	QuizType      string     `json:"quiz_type"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	ScheduleState string     `json:"schedule_state"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

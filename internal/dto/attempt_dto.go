package dto

import "time"

// AnswerDTO is a tagged union over the two question kinds. Type selects the
// active arm: "mcq" uses SelectedOptions, "code" uses Passed plus the
// submitted source. An answer whose arm does not match its question's
// declared type scores zero; it is never interpreted as the other kind.
type AnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=mcq code"`

	// MCQ arm: indices into the question's ordered option list.
	SelectedOptions []int `json:"selected_options,omitempty"`

	// Code arm. Passed is the client-reported outcome of running the
	// question's test cases through the execution service. The server
	// awards marks on this flag without re-executing: a documented trust
	// boundary for this low-stakes tool.
	Passed     *bool  `json:"passed,omitempty"`
	SourceCode string `json:"source_code,omitempty"`
	Language   string `json:"language,omitempty"`
}

// AttemptSubmitDTO is the submission payload. TerminationReason is set by
// the client's proctoring relay (fullscreen exit, tab hidden) and switches
// the stored status to "Terminated: <reason>"; the submission semantics are
// otherwise identical to a normal submit.
type AttemptSubmitDTO struct {
	QuizID            uint        `json:"quiz_id" binding:"required"`
	Answers           []AnswerDTO `json:"answers" binding:"dive"`
	TerminationReason string      `json:"termination_reason,omitempty"`
}

type AttemptCheckDTO struct {
	QuizID uint   `json:"quiz_id" binding:"required"`
	PRN    string `json:"prn" binding:"required"`
}

type AttemptCheckResponseDTO struct {
	Attempted bool `json:"attempted"`
}

// SubmitResponseDTO reports the outcome of a submission. Success=false with
// no error means the attempt was rejected as a duplicate.
type SubmitResponseDTO struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Result  *ResultDTO `json:"result,omitempty"`
}

type ResultDTO struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	StudentName string    `json:"student_name"`
	Year        string    `json:"year,omitempty"`
	PRN         string    `json:"prn"`
	Score       int       `json:"score"`
	TotalMarks  int       `json:"total_marks"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

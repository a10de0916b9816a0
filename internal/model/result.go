package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StatusCompleted marks a normally submitted attempt. Terminated attempts
// carry a "Terminated: <reason>" status built with TerminatedStatus.
const StatusCompleted = "Completed"

// TerminatedStatus formats the status string for a proctoring-forced
// submission (fullscreen exit, tab hidden).
func TerminatedStatus(reason string) string {
	return fmt.Sprintf("Terminated: %s", reason)
}

// Result is a single leaderboard entry: one student's outcome for one quiz.
// Results are created exactly once at submission time and never mutated.
//
// AttemptKey carries the storage-level uniqueness guarantee: for weekly and
// practice quizzes it is "<quizID>:<prn>", so a second insert for the same
// (quiz, student) pair violates the unique index and is reported as a
// duplicate. Mock quizzes append a UUID so every retake inserts cleanly.
type Result struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	AttemptKey  string         `json:"-" gorm:"not null;uniqueIndex"`
	StudentName string         `json:"student_name" gorm:"not null"`
	Year        string         `json:"year"`
	PRN         string         `json:"prn" gorm:"not null;index"`
	Score       int            `json:"score" gorm:"not null"`
	TotalMarks  int            `json:"total_marks" gorm:"not null"`
	Status      string         `json:"status" gorm:"not null"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

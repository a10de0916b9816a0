package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz types. Weekly and practice quizzes allow exactly one scored attempt
// per student; mock quizzes allow unlimited retakes.
const (
	QuizTypeWeekly   = "weekly"
	QuizTypePractice = "practice"
	QuizTypeMock     = "mock"
)

type Quiz struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Title     string     `json:"title" gorm:"not null"`
	Category  string     `json:"category" gorm:"index"`
	QuizType  string     `json:"quiz_type" gorm:"not null;default:'weekly'"` // "weekly", "practice", "mock"
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	// TargetYears restricts visibility to the listed academic years. Empty
	// means the quiz is visible to all years.
	TargetYears datatypes.JSONSlice[string] `json:"target_years"`
	Questions   []Question                  `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-"`
}

// SingleAttempt reports whether the quiz permits only one scored attempt.
func (q *Quiz) SingleAttempt() bool {
	return q.QuizType != QuizTypeMock
}

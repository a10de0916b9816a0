package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ  = "mcq"
	QuestionTypeCode = "code"
)

type Question struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	QuizID      uint   `json:"quiz_id" gorm:"not null;index"`
	Text        string `json:"text" gorm:"type:text;not null"`
	Type        string `json:"type" gorm:"not null"` // "mcq", "code"
	Marks       int    `json:"marks" gorm:"not null"`
	OrderInQuiz int    `json:"order_in_quiz" gorm:"not null"`

	// MCQ fields. CorrectOptions holds indices into the ordered Options
	// slice and, together with Explanation, forms the answer key.
	MultiSelect    bool                     `json:"multi_select"`
	CorrectOptions datatypes.JSONSlice[int] `json:"correct_options,omitempty"`
	Explanation    string                   `json:"explanation,omitempty" gorm:"type:text"`
	Options        []Option                 `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`

	// Code fields.
	TestCases []TestCase `json:"test_cases,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Option struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	QuestionID      uint           `json:"question_id" gorm:"not null;index"`
	Text            string         `json:"text" gorm:"not null"`
	ImageURL        *string        `json:"image_url,omitempty"`
	OrderInQuestion int            `json:"order_in_question" gorm:"not null"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

type TestCase struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Input          string         `json:"input" gorm:"type:text"`
	ExpectedOutput string         `json:"expected_output" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

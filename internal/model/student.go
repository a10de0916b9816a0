package model

import (
	"time"

	"gorm.io/gorm"
)

// Student is the roster record. PRN is the enrollment number and is unique
// within a category; the category lock restricts which quizzes the student
// can see. The attempt flow only ever reads students.
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	PRN       string         `json:"prn" gorm:"not null;uniqueIndex:idx_students_category_prn"`
	Category  string         `json:"category" gorm:"uniqueIndex:idx_students_category_prn"`
	Year      string         `json:"year" gorm:"index"`
	Branch    string         `json:"branch"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package service

import "errors"

var (
	// ErrQuizNotFound is returned when a referenced quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrStudentNotFound is returned when a roster lookup misses.
	ErrStudentNotFound = errors.New("student not found")
)

package dto

import "time"

// LeaderboardEntryDTO is one ranked row. Rank is 1-based and assigned after
// sorting by score descending, submission time ascending.
type LeaderboardEntryDTO struct {
	Rank        int       `json:"rank"`
	StudentName string    `json:"student_name"`
	Year        string    `json:"year,omitempty"`
	PRN         string    `json:"prn"`
	Score       int       `json:"score"`
	TotalMarks  int       `json:"total_marks"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type LeaderboardDTO struct {
	QuizID  uint                  `json:"quiz_id"`
	Entries []LeaderboardEntryDTO `json:"entries"`
}

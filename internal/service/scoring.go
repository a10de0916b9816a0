package service

import (
	"sort"

	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/rs/zerolog/log"
)

// ScoreAnswers recomputes the score server-side from the authoritative
// answer key. The total is always the sum of per-question marks, regardless
// of how many answers were submitted.
//
// MCQ questions are all-or-nothing: marks are awarded only when the
// deduplicated submitted index set exactly equals the correct set. Code
// questions award marks on the client-reported passed flag; the server does
// not re-execute test cases.
//
// Answers referencing unknown questions, or whose tagged-union arm does not
// match the question's declared type, are ignored and score zero.
func ScoreAnswers(questions []model.Question, answers []dto.AnswerDTO) (score int, totalMarks int) {
	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
		totalMarks += q.Marks
	}

	for _, ans := range answers {
		question, exists := questionMap[ans.QuestionID]
		if !exists {
			log.Warn().Uint("questionID", ans.QuestionID).Msg("ScoreAnswers: answer references a question not in this quiz, skipping")
			continue
		}
		if ans.Type != question.Type {
			log.Warn().
				Uint("questionID", ans.QuestionID).
				Str("answerType", ans.Type).
				Str("questionType", question.Type).
				Msg("ScoreAnswers: answer kind does not match question type, skipping")
			continue
		}

		switch question.Type {
		case model.QuestionTypeMCQ:
			if mcqCorrect(question.CorrectOptions, ans.SelectedOptions) {
				score += question.Marks
			}
		case model.QuestionTypeCode:
			if ans.Passed != nil && *ans.Passed {
				score += question.Marks
			}
		}
	}
	return score, totalMarks
}

// mcqCorrect implements exact-match semantics: order and duplicates in the
// submission are irrelevant, partial credit is never given, and an empty
// submission never matches a non-empty key.
func mcqCorrect(correct []int, selected []int) bool {
	c := sortedUnique(correct)
	s := sortedUnique(selected)
	if len(c) == 0 || len(c) != len(s) {
		return false
	}
	for i := range c {
		if c[i] != s[i] {
			return false
		}
	}
	return true
}

func sortedUnique(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

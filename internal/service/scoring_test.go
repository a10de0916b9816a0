package service_test

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func mcqQuestion(id uint, marks int, correct []int) model.Question {
	return model.Question{
		ID:             id,
		Type:           model.QuestionTypeMCQ,
		Marks:          marks,
		MultiSelect:    len(correct) > 1,
		CorrectOptions: datatypes.NewJSONSlice(correct),
	}
}

func codeQuestion(id uint, marks int) model.Question {
	return model.Question{ID: id, Type: model.QuestionTypeCode, Marks: marks}
}

func TestScoreAnswersMCQExactMatch(t *testing.T) {
	questions := []model.Question{mcqQuestion(1, 5, []int{0, 2})}

	tests := []struct {
		name     string
		selected []int
		want     int
	}{
		{"exact match out of order", []int{2, 0}, 5},
		{"exact match with duplicates", []int{0, 2, 2}, 5},
		{"subset gets nothing", []int{0}, 0},
		{"superset gets nothing", []int{0, 1, 2}, 0},
		{"empty gets nothing", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := service.ScoreAnswers(questions, []dto.AnswerDTO{
				{QuestionID: 1, Type: "mcq", SelectedOptions: tt.selected},
			})
			assert.Equal(t, tt.want, score)
			assert.Equal(t, 5, total)
		})
	}
}

func TestScoreAnswersCodePassFailOnly(t *testing.T) {
	questions := []model.Question{codeQuestion(2, 10)}

	score, total := service.ScoreAnswers(questions, []dto.AnswerDTO{
		{QuestionID: 2, Type: "code", Passed: boolPtr(true)},
	})
	assert.Equal(t, 10, score)
	assert.Equal(t, 10, total)

	score, _ = service.ScoreAnswers(questions, []dto.AnswerDTO{
		{QuestionID: 2, Type: "code", Passed: boolPtr(false)},
	})
	assert.Equal(t, 0, score)

	// A missing passed flag scores zero, it is not an error.
	score, _ = service.ScoreAnswers(questions, []dto.AnswerDTO{
		{QuestionID: 2, Type: "code"},
	})
	assert.Equal(t, 0, score)
}

func TestScoreAnswersTotalIsSummedWeights(t *testing.T) {
	questions := []model.Question{
		mcqQuestion(1, 5, []int{1}),
		mcqQuestion(2, 3, []int{0}),
		codeQuestion(3, 10),
	}

	// No answers submitted at all: zero score, full total.
	score, total := service.ScoreAnswers(questions, nil)
	assert.Equal(t, 0, score)
	assert.Equal(t, 18, total)
}

func TestScoreAnswersIgnoresMismatchedArms(t *testing.T) {
	questions := []model.Question{
		mcqQuestion(1, 5, []int{0}),
		codeQuestion(2, 10),
	}

	// A code-shaped answer for an MCQ question and vice versa are ignored,
	// as is an answer for an unknown question.
	score, total := service.ScoreAnswers(questions, []dto.AnswerDTO{
		{QuestionID: 1, Type: "code", Passed: boolPtr(true)},
		{QuestionID: 2, Type: "mcq", SelectedOptions: []int{0}},
		{QuestionID: 99, Type: "mcq", SelectedOptions: []int{0}},
	})
	assert.Equal(t, 0, score)
	assert.Equal(t, 15, total)
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
	ListQuizzes() ([]dto.QuizSummaryDTO, error)
	DeleteQuiz(quizID uint) error
	GetReport(quizID uint) (*dto.QuizReportDTO, error)
}

type adminQuizService struct {
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
	db         *gorm.DB
	clock      func() time.Time
}

func NewAdminQuizService(quizRepo repository.QuizRepository, resultRepo repository.ResultRepository, db *gorm.DB) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo, resultRepo: resultRepo, db: db, clock: time.Now}
}

// CreateQuiz validates and persists a quiz with all its questions. The
// schedule window and answer-key index bounds are checked here so malformed
// quizzes cannot enter the store.
func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	if err := validateSchedule(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	orderSeen := make(map[int]bool)
	questions := make([]model.Question, 0, len(req.Questions))
	for _, qDto := range req.Questions {
		if orderSeen[qDto.OrderInQuiz] {
			return nil, fmt.Errorf("duplicate order_in_quiz %d", qDto.OrderInQuiz)
		}
		orderSeen[qDto.OrderInQuiz] = true

		question, err := buildQuestion(qDto)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}

	quiz := model.Quiz{
		Title:       req.Title,
		Category:    req.Category,
		QuizType:    req.QuizType,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TargetYears: datatypes.NewJSONSlice(req.TargetYears),
		Questions:   questions,
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: database error")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: failed to reload created quiz")
		return buildQuizDetail(&quiz, true), nil
	}
	detail := buildQuizDetail(created, true)
	detail.ScheduleState = string(ClassifySchedule(created.StartTime, created.EndTime, s.clock()))
	return detail, nil
}

func (s *adminQuizService) ListQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount("")
	if err != nil {
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	now := s.clock()
	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, qwc := range quizzes {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:            qwc.Quiz.ID,
			Title:         qwc.Quiz.Title,
			Category:      qwc.Quiz.Category,
			QuizType:      qwc.Quiz.QuizType,
			StartTime:     qwc.Quiz.StartTime,
			EndTime:       qwc.Quiz.EndTime,
			ScheduleState: string(ClassifySchedule(qwc.Quiz.StartTime, qwc.Quiz.EndTime, now)),
			QuestionCount: qwc.QuestionCount,
			CreatedAt:     qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

// DeleteQuiz removes the quiz and its results in one transaction.
func (s *adminQuizService) DeleteQuiz(quizID uint) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("error looking up quiz %d: %w", quizID, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Result{}).Error; err != nil {
			return fmt.Errorf("error deleting results for quiz %d: %w", quizID, err)
		}
		if err := tx.Delete(&model.Quiz{}, quizID).Error; err != nil {
			return fmt.Errorf("error deleting quiz %d: %w", quizID, err)
		}
		return nil
	})
}

func (s *adminQuizService) GetReport(quizID uint) (*dto.QuizReportDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error looking up quiz %d: %w", quizID, err)
	}

	agg, err := s.resultRepo.AggregateByQuiz(quizID)
	if err != nil {
		return nil, fmt.Errorf("error aggregating results for quiz %d: %w", quizID, err)
	}

	return &dto.QuizReportDTO{
		QuizID:       quiz.ID,
		Title:        quiz.Title,
		Attempts:     agg.Attempts,
		AverageScore: agg.AverageScore,
		HighestScore: agg.HighestScore,
		Completed:    agg.Completed,
		Terminated:   agg.Terminated,
	}, nil
}

func validateSchedule(start, end *time.Time) error {
	if start == nil && end == nil {
		// A quiz without a window is allowed (mock quizzes usually have
		// none); it classifies as invalid and is never joinable.
		return nil
	}
	if start == nil || end == nil {
		return fmt.Errorf("schedule must set both start_time and end_time, or neither")
	}
	if start.After(*end) {
		return fmt.Errorf("schedule start_time must not be after end_time")
	}
	return nil
}

func buildQuestion(qDto dto.QuestionCreateDTO) (*model.Question, error) {
	question := model.Question{
		Text:        qDto.Text,
		Type:        qDto.Type,
		Marks:       qDto.Marks,
		OrderInQuiz: qDto.OrderInQuiz,
		MultiSelect: qDto.MultiSelect,
		Explanation: qDto.Explanation,
	}

	switch qDto.Type {
	case model.QuestionTypeMCQ:
		if len(qDto.Options) < 2 {
			return nil, fmt.Errorf("question %d: an mcq question needs at least 2 options", qDto.OrderInQuiz)
		}
		if len(qDto.CorrectOptions) == 0 {
			return nil, fmt.Errorf("question %d: correct_options must not be empty", qDto.OrderInQuiz)
		}
		if !qDto.MultiSelect && len(qDto.CorrectOptions) != 1 {
			return nil, fmt.Errorf("question %d: a single-select question must have exactly one correct option", qDto.OrderInQuiz)
		}
		for _, idx := range qDto.CorrectOptions {
			if idx < 0 || idx >= len(qDto.Options) {
				return nil, fmt.Errorf("question %d: correct option index %d is out of range", qDto.OrderInQuiz, idx)
			}
		}
		question.CorrectOptions = datatypes.NewJSONSlice(qDto.CorrectOptions)
		for i, optDto := range qDto.Options {
			question.Options = append(question.Options, model.Option{
				Text:            optDto.Text,
				ImageURL:        optDto.ImageURL,
				OrderInQuestion: i,
			})
		}
	case model.QuestionTypeCode:
		if len(qDto.TestCases) == 0 {
			return nil, fmt.Errorf("question %d: a code question needs at least one test case", qDto.OrderInQuiz)
		}
		for _, tcDto := range qDto.TestCases {
			question.TestCases = append(question.TestCases, model.TestCase{
				Input:          tcDto.Input,
				ExpectedOutput: tcDto.ExpectedOutput,
			})
		}
	}
	return &question, nil
}

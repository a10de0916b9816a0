package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService is the student-facing read side: quiz listings filtered by the
// student's category and year, and quiz details with the answer key stripped
// for single-attempt quizzes.
type QuizService interface {
	ListQuizzes(authCtx auth.Context) ([]dto.QuizSummaryDTO, error)
	GetQuiz(quizID uint) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
	clock    func() time.Time
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo, clock: time.Now}
}

func (s *quizService) ListQuizzes(authCtx auth.Context) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestionCount(authCtx.Category)
	if err != nil {
		log.Error().Err(err).Str("category", authCtx.Category).Msg("ListQuizzes: repository error")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	now := s.clock()
	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, qwc := range quizzes {
		if !yearMatches(qwc.TargetYears, authCtx.Year) {
			continue
		}
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

// GetQuiz returns the quiz with its questions. For weekly and practice
// quizzes the answer-key fields are stripped before transmission; mock
// quizzes keep them so the client can show explanations between retakes.
func (s *quizService) GetQuiz(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error loading quiz %d: %w", quizID, err)
	}

	detail := buildQuizDetail(quiz, !quiz.SingleAttempt())
	detail.ScheduleState = string(ClassifySchedule(quiz.StartTime, quiz.EndTime, s.clock()))
	return detail, nil
}

// yearMatches applies the target-year filter; an empty filter admits all.
func yearMatches(targetYears []string, year string) bool {
	if len(targetYears) == 0 {
		return true
	}
	for _, y := range targetYears {
		if y == year {
			return true
		}
	}
	return false
}

// buildQuizDetail maps a quiz model to its transport shape. includeKey
// controls whether the answer-key fields survive the mapping.
func buildQuizDetail(quiz *model.Quiz, includeKey bool) *dto.QuizDetailDTO {
	detail := &dto.QuizDetailDTO{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Category:    quiz.Category,
		QuizType:    quiz.QuizType,
		StartTime:   quiz.StartTime,
		EndTime:     quiz.EndTime,
		TargetYears: quiz.TargetYears,
	}

	detail.Questions = make([]dto.QuestionDTO, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		qDTO := dto.QuestionDTO{
			ID:          q.ID,
			Text:        q.Text,
			Type:        q.Type,
			Marks:       q.Marks,
			OrderInQuiz: q.OrderInQuiz,
			MultiSelect: q.MultiSelect,
		}
		detail.TotalMarks += q.Marks

		for _, opt := range q.Options {
			var optDTO dto.OptionDTO
			copier.Copy(&optDTO, &opt)
			qDTO.Options = append(qDTO.Options, optDTO)
		}
		for _, tc := range q.TestCases {
			var tcDTO dto.TestCaseDTO
			copier.Copy(&tcDTO, &tc)
			qDTO.TestCases = append(qDTO.TestCases, tcDTO)
		}

		if includeKey {
			qDTO.CorrectOptions = q.CorrectOptions
			qDTO.Explanation = q.Explanation
		}
		detail.Questions = append(detail.Questions, qDTO)
	}
	return detail
}

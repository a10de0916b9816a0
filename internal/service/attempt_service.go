package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService validates eligibility, recomputes scores against the
// authoritative answer key and persists exactly one result per student per
// non-mock quiz.
type AttemptService interface {
	CheckAttempt(quizID uint, prn string) (bool, error)
	Submit(ctx context.Context, authCtx auth.Context, req dto.AttemptSubmitDTO) (*dto.SubmitResponseDTO, error)
}

type attemptService struct {
	quizRepo    repository.QuizRepository
	resultRepo  repository.ResultRepository
	leaderboard LeaderboardService
	clock       func() time.Time
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	resultRepo repository.ResultRepository,
	leaderboard LeaderboardService,
) AttemptService {
	return &attemptService{
		quizRepo:    quizRepo,
		resultRepo:  resultRepo,
		leaderboard: leaderboard,
		clock:       time.Now,
	}
}

// CheckAttempt reports whether the student has already used their attempt.
// Mock quizzes always report false (unlimited retakes), and an unknown quiz
// is treated as not attempted rather than an error.
func (s *attemptService) CheckAttempt(quizID uint, prn string) (bool, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Uint("quizID", quizID).Msg("CheckAttempt: quiz not found, reporting not attempted")
			return false, nil
		}
		return false, fmt.Errorf("error looking up quiz %d: %w", quizID, err)
	}

	if !quiz.SingleAttempt() {
		return false, nil
	}

	attempted, err := s.resultRepo.ExistsByQuizAndPRN(quizID, prn)
	if err != nil {
		return false, fmt.Errorf("error checking attempts for quiz %d: %w", quizID, err)
	}
	return attempted, nil
}

// Submit recomputes the score server-side and inserts the result. The
// duplicate check is not a pre-read: the attempt key's unique index makes
// the insert itself the atomic check, so two concurrent submissions from
// the same student cannot both land.
func (s *attemptService) Submit(ctx context.Context, authCtx auth.Context, req dto.AttemptSubmitDTO) (*dto.SubmitResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error loading quiz %d: %w", req.QuizID, err)
	}

	score, totalMarks := ScoreAnswers(quiz.Questions, req.Answers)

	status := model.StatusCompleted
	if req.TerminationReason != "" {
		status = model.TerminatedStatus(req.TerminationReason)
	}

	result := model.Result{
		QuizID:      quiz.ID,
		AttemptKey:  attemptKey(quiz, authCtx.PRN),
		StudentName: authCtx.Name,
		Year:        authCtx.Year,
		PRN:         authCtx.PRN,
		Score:       score,
		TotalMarks:  totalMarks,
		Status:      status,
		SubmittedAt: s.clock(),
	}

	if err := s.resultRepo.Create(&result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Info().Uint("quizID", quiz.ID).Str("prn", authCtx.PRN).Msg("Submit: duplicate attempt rejected")
			return &dto.SubmitResponseDTO{
				Success: false,
				Message: "You have already submitted this quiz",
			}, nil
		}
		return nil, fmt.Errorf("error saving result for quiz %d: %w", quiz.ID, err)
	}

	s.leaderboard.Invalidate(ctx, quiz.ID)

	log.Info().
		Uint("quizID", quiz.ID).
		Str("prn", authCtx.PRN).
		Int("score", score).
		Int("totalMarks", totalMarks).
		Str("status", status).
		Msg("Submit: result recorded")

	resultDTO := toResultDTO(result)
	return &dto.SubmitResponseDTO{Success: true, Result: &resultDTO}, nil
}

// attemptKey yields the unique-index value enforcing single attempts. Mock
// quizzes get a fresh UUID suffix so every retake inserts a new row.
func attemptKey(quiz *model.Quiz, prn string) string {
	if quiz.SingleAttempt() {
		return fmt.Sprintf("%d:%s", quiz.ID, prn)
	}
	return fmt.Sprintf("%d:%s:%s", quiz.ID, prn, uuid.NewString())
}

func toResultDTO(r model.Result) dto.ResultDTO {
	return dto.ResultDTO{
		ID:          r.ID,
		QuizID:      r.QuizID,
		StudentName: r.StudentName,
		Year:        r.Year,
		PRN:         r.PRN,
		Score:       r.Score,
		TotalMarks:  r.TotalMarks,
		Status:      r.Status,
		SubmittedAt: r.SubmittedAt,
	}
}

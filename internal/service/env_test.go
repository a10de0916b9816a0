package service_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/quizdeck/quizdeck/internal/cache"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	quizRepo    repository.QuizRepository
	resultRepo  repository.ResultRepository
	leaderboard service.LeaderboardService
	attempts    service.AttemptService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	quizRepo := repository.NewQuizRepository(db)
	resultRepo := repository.NewResultRepository(db)
	leaderboard := service.NewLeaderboardService(resultRepo, newTestCache(t))
	return &testEnv{
		db:          db,
		quizRepo:    quizRepo,
		resultRepo:  resultRepo,
		leaderboard: leaderboard,
		attempts:    service.NewAttemptService(quizRepo, resultRepo, leaderboard),
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database with a shared cache so every pooled
	// connection sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.TestCase{},
		&model.Result{},
		&model.Student{},
	))
	return db
}

func newTestCache(t *testing.T) *cache.LeaderboardCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewLeaderboardCache(client, time.Second)
}

// seedQuiz creates a quiz with one MCQ question (marks=5, correct {0,2}) and
// one code question (marks=10).
func seedQuiz(t *testing.T, env *testEnv, quizType string) *model.Quiz {
	t.Helper()
	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	quiz := &model.Quiz{
		Title:     "Week 1 Aptitude",
		Category:  "default",
		QuizType:  quizType,
		StartTime: &start,
		EndTime:   &end,
		Questions: []model.Question{
			{
				Text:           "Pick the even numbers",
				Type:           model.QuestionTypeMCQ,
				Marks:          5,
				OrderInQuiz:    1,
				MultiSelect:    true,
				CorrectOptions: datatypes.NewJSONSlice([]int{0, 2}),
				Options: []model.Option{
					{Text: "2", OrderInQuestion: 0},
					{Text: "3", OrderInQuestion: 1},
					{Text: "4", OrderInQuestion: 2},
					{Text: "5", OrderInQuestion: 3},
				},
			},
			{
				Text:        "Print the sum of two integers",
				Type:        model.QuestionTypeCode,
				Marks:       10,
				OrderInQuiz: 2,
				TestCases: []model.TestCase{
					{Input: "1 2", ExpectedOutput: "3"},
					{Input: "5 7", ExpectedOutput: "12"},
				},
			},
		},
	}
	require.NoError(t, env.quizRepo.Create(quiz))
	return quiz
}

func boolPtr(b bool) *bool {
	return &b
}

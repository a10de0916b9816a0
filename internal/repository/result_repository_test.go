package repository_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Result{}))
	return db
}

func result(quizID uint, prn string, score int, submittedAt time.Time) *model.Result {
	return &model.Result{
		QuizID:      quizID,
		AttemptKey:  fmt.Sprintf("%d:%s", quizID, prn),
		StudentName: "Student " + prn,
		Year:        "SE",
		PRN:         prn,
		Score:       score,
		TotalMarks:  100,
		Status:      model.StatusCompleted,
		SubmittedAt: submittedAt,
	}
}

func TestCreateDuplicateAttemptKey(t *testing.T) {
	repo := repository.NewResultRepository(newTestDB(t))
	now := time.Now()

	require.NoError(t, repo.Create(result(1, "1234567890", 40, now)))

	// A second insert with the same attempt key must fail with the translated
	// duplicate-key error, not a driver-specific one.
	err := repo.Create(result(1, "1234567890", 90, now.Add(time.Second)))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The same student on a different quiz is a different key.
	require.NoError(t, repo.Create(result(2, "1234567890", 90, now)))
}

func TestFindByQuizRankedOrdering(t *testing.T) {
	repo := repository.NewResultRepository(newTestDB(t))
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(result(1, "A", 80, base.Add(5*time.Second))))
	require.NoError(t, repo.Create(result(1, "B", 90, base.Add(10*time.Second))))
	require.NoError(t, repo.Create(result(1, "C", 90, base.Add(2*time.Second))))
	require.NoError(t, repo.Create(result(2, "D", 100, base)))

	results, err := repo.FindByQuizRanked(1)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "C", results[0].PRN)
	assert.Equal(t, "B", results[1].PRN)
	assert.Equal(t, "A", results[2].PRN)
}

func TestExistsByQuizAndPRN(t *testing.T) {
	repo := repository.NewResultRepository(newTestDB(t))

	exists, err := repo.ExistsByQuizAndPRN(1, "1234567890")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(result(1, "1234567890", 40, time.Now())))

	exists, err = repo.ExistsByQuizAndPRN(1, "1234567890")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAggregateByQuiz(t *testing.T) {
	repo := repository.NewResultRepository(newTestDB(t))
	now := time.Now()

	require.NoError(t, repo.Create(result(1, "A", 80, now)))
	terminated := result(1, "B", 20, now)
	terminated.Status = model.TerminatedStatus("Tab switched")
	require.NoError(t, repo.Create(terminated))

	agg, err := repo.AggregateByQuiz(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), agg.Attempts)
	assert.InDelta(t, 50.0, agg.AverageScore, 0.001)
	assert.Equal(t, 80, agg.HighestScore)
	assert.Equal(t, int64(1), agg.Completed)
	assert.Equal(t, int64(1), agg.Terminated)
}

package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResult(t *testing.T, env *testEnv, quizID uint, prn string, score int, submittedAt time.Time) {
	t.Helper()
	require.NoError(t, env.resultRepo.Create(&model.Result{
		QuizID:      quizID,
		AttemptKey:  fmt.Sprintf("%d:%s", quizID, prn),
		StudentName: "Student " + prn,
		Year:        "SE",
		PRN:         prn,
		Score:       score,
		TotalMarks:  100,
		Status:      model.StatusCompleted,
		SubmittedAt: submittedAt,
	}))
}

func TestLeaderboardOrdering(t *testing.T) {
	env := newTestEnv(t)
	quiz := seedQuiz(t, env, model.QuizTypeWeekly)

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	seedResult(t, env, quiz.ID, "A", 80, base.Add(5*time.Second))
	seedResult(t, env, quiz.ID, "B", 90, base.Add(10*time.Second))
	seedResult(t, env, quiz.ID, "C", 90, base.Add(2*time.Second))

	lb, err := env.leaderboard.GetLeaderboard(context.Background(), quiz.ID)
	require.NoError(t, err)
	require.Len(t, lb.Entries, 3)

	// Score descending; ties broken by earlier submission.
	assert.Equal(t, "C", lb.Entries[0].PRN)
	assert.Equal(t, "B", lb.Entries[1].PRN)
	assert.Equal(t, "A", lb.Entries[2].PRN)
	assert.Equal(t, []int{1, 2, 3}, []int{lb.Entries[0].Rank, lb.Entries[1].Rank, lb.Entries[2].Rank})
}

func TestLeaderboardReadsAreIdempotent(t *testing.T) {
	env := newTestEnv(t)
	quiz := seedQuiz(t, env, model.QuizTypeWeekly)

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	seedResult(t, env, quiz.ID, "A", 50, base)
	seedResult(t, env, quiz.ID, "B", 70, base.Add(time.Second))

	ctx := context.Background()
	first, err := env.leaderboard.GetLeaderboard(ctx, quiz.ID)
	require.NoError(t, err)
	// The second read is served from the cache and must agree with the first.
	second, err := env.leaderboard.GetLeaderboard(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, second.Entries, len(first.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].Rank, second.Entries[i].Rank)
		assert.Equal(t, first.Entries[i].PRN, second.Entries[i].PRN)
		assert.Equal(t, first.Entries[i].Score, second.Entries[i].Score)
	}
}

func TestLeaderboardEmptyQuiz(t *testing.T) {
	env := newTestEnv(t)
	quiz := seedQuiz(t, env, model.QuizTypeWeekly)

	lb, err := env.leaderboard.GetLeaderboard(context.Background(), quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, lb.QuizID)
	assert.Empty(t, lb.Entries)
}

func TestLeaderboardInvalidatedAfterSubmission(t *testing.T) {
	env := newTestEnv(t)
	quiz := seedQuiz(t, env, model.QuizTypeWeekly)
	ctx := context.Background()

	// Warm the cache with an empty leaderboard.
	lb, err := env.leaderboard.GetLeaderboard(ctx, quiz.ID)
	require.NoError(t, err)
	require.Empty(t, lb.Entries)

	resp, err := env.attempts.Submit(ctx, student, dto.AttemptSubmitDTO{
		QuizID:  quiz.ID,
		Answers: fullMarksAnswers(quiz),
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	// The submission invalidates the cached entry, so the next read sees
	// the new result immediately.
	lb, err = env.leaderboard.GetLeaderboard(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, lb.Entries, 1)
	assert.Equal(t, student.PRN, lb.Entries[0].PRN)
}

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quizdeck/quizdeck/internal/cache"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// LeaderboardService produces the ranked result list for a quiz. Reads are
// side-effect free and safe to poll; the reference client polls every three
// seconds, so reads go through a short-TTL cache and concurrent misses for
// the same quiz are collapsed with singleflight.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, quizID uint) (*dto.LeaderboardDTO, error)
	Invalidate(ctx context.Context, quizID uint)
}

type leaderboardService struct {
	resultRepo repository.ResultRepository
	cache      *cache.LeaderboardCache
	sf         singleflight.Group
}

func NewLeaderboardService(resultRepo repository.ResultRepository, lbCache *cache.LeaderboardCache) LeaderboardService {
	return &leaderboardService{resultRepo: resultRepo, cache: lbCache}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, quizID uint) (*dto.LeaderboardDTO, error) {
	if lb, ok := s.cache.Get(ctx, quizID); ok {
		return lb, nil
	}

	result, err, _ := s.sf.Do(strconv.FormatUint(uint64(quizID), 10), func() (interface{}, error) {
		// Re-check the cache in case another goroutine filled it.
		if lb, ok := s.cache.Get(ctx, quizID); ok {
			return lb, nil
		}

		results, err := s.resultRepo.FindByQuizRanked(quizID)
		if err != nil {
			return nil, fmt.Errorf("error fetching leaderboard for quiz %d: %w", quizID, err)
		}

		lb := &dto.LeaderboardDTO{
			QuizID:  quizID,
			Entries: make([]dto.LeaderboardEntryDTO, 0, len(results)),
		}
		for i, r := range results {
			lb.Entries = append(lb.Entries, dto.LeaderboardEntryDTO{
				Rank:        i + 1,
				StudentName: r.StudentName,
				Year:        r.Year,
				PRN:         r.PRN,
				Score:       r.Score,
				TotalMarks:  r.TotalMarks,
				Status:      r.Status,
				SubmittedAt: r.SubmittedAt,
			})
		}

		s.cache.Set(ctx, quizID, lb)
		return lb, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.LeaderboardDTO), nil
}

func (s *leaderboardService) Invalidate(ctx context.Context, quizID uint) {
	s.cache.Invalidate(ctx, quizID)
	log.Debug().Uint("quizID", quizID).Msg("Leaderboard invalidated after submission")
}

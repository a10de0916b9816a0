package repository

import (
	"github.com/quizdeck/quizdeck/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	// Create inserts a new result. A unique-index violation on the attempt
	// key surfaces as gorm.ErrDuplicatedKey; callers treat that as the
	// authoritative duplicate-submission signal.
	Create(result *model.Result) error
	ExistsByQuizAndPRN(quizID uint, prn string) (bool, error)
	FindByQuizRanked(quizID uint) ([]model.Result, error)
	AggregateByQuiz(quizID uint) (*ResultAggregate, error)
	DeleteByQuizID(quizID uint) error
}

type ResultAggregate struct {
	Attempts     int64
	AverageScore float64
	HighestScore int
	Completed    int64
	Terminated   int64
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) ExistsByQuizAndPRN(quizID uint, prn string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Result{}).
		Where("quiz_id = ? AND prn = ?", quizID, prn).
		Count(&count).Error
	return count > 0, err
}

// FindByQuizRanked returns every result for a quiz in leaderboard order:
// score descending, submission time ascending, id ascending. The trailing id
// key makes the order total, so repeated reads of the same snapshot agree.
func (r *resultRepository) FindByQuizRanked(quizID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.
		Where("quiz_id = ?", quizID).
		Order("score DESC, submitted_at ASC, id ASC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) AggregateByQuiz(quizID uint) (*ResultAggregate, error) {
	var agg ResultAggregate
	err := r.db.Model(&model.Result{}).
		Select(
			"COUNT(*) as attempts, "+
				"COALESCE(AVG(score), 0) as average_score, "+
				"COALESCE(MAX(score), 0) as highest_score, "+
				"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) as completed, "+
				"SUM(CASE WHEN status != ? THEN 1 ELSE 0 END) as terminated",
			model.StatusCompleted, model.StatusCompleted).
		Where("quiz_id = ?", quizID).
		Scan(&agg).Error
	return &agg, err
}

func (r *resultRepository) DeleteByQuizID(quizID uint) error {
	return r.db.Where("quiz_id = ?", quizID).Delete(&model.Result{}).Error
}

package learning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type QuizRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error)
	// GetForStudent only returns the quiz when studentID owns it.
	GetForStudent(ctx context.Context, tx *gorm.DB, id, studentID uuid.UUID) (*types.Quiz, error)
	ListByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, limit int) ([]*types.Quiz, error)
	// MarkGraded sets score and completed_at only while the quiz is open.
	// It reports false when no open quiz matched.
	MarkGraded(ctx context.Context, tx *gorm.DB, id, studentID uuid.UUID, score int, completedAt time.Time) (bool, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	repoLog := baseLog.With("repo", "QuizRepo")
	return &quizRepo{db: db, log: repoLog}
}

func (r *quizRepo) Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(quizzes) == 0 {
		return []*types.Quiz{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepo) GetForStudent(ctx context.Context, tx *gorm.DB, id, studentID uuid.UUID) (*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil || studentID == uuid.Nil {
		return nil, nil
	}

	var results []*types.Quiz
	if err := transaction.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *quizRepo) ListByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, limit int) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Quiz
	if studentID == uuid.Nil {
		return results, nil
	}

	q := transaction.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepo) MarkGraded(ctx context.Context, tx *gorm.DB, id, studentID uuid.UUID, score int, completedAt time.Time) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Quiz{}).
		Where("id = ? AND student_id = ? AND completed_at IS NULL", id, studentID).
		Updates(map[string]interface{}{
			"score":        score,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

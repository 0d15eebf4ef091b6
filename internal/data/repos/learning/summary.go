package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type SummaryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, summaries []*types.Summary) ([]*types.Summary, error)
	// GetCached returns the shared row for (subjectID, chapter), or (nil, nil).
	GetCached(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID, chapter string) (*types.Summary, error)
	// CreateCached inserts s as the shared row unless one already exists.
	// It reports whether this call wrote the row.
	CreateCached(ctx context.Context, tx *gorm.DB, s *types.Summary) (bool, error)
	// ListByStudentID returns the student's delivery rows, newest first.
	ListByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, limit int) ([]*types.Summary, error)
}

type summaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSummaryRepo(db *gorm.DB, baseLog *logger.Logger) SummaryRepo {
	repoLog := baseLog.With("repo", "SummaryRepo")
	return &summaryRepo{db: db, log: repoLog}
}

func (r *summaryRepo) Create(ctx context.Context, tx *gorm.DB, summaries []*types.Summary) ([]*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(summaries) == 0 {
		return []*types.Summary{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *summaryRepo) GetCached(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID, chapter string) (*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Summary
	if err := transaction.WithContext(ctx).
		Where("subject_id = ? AND chapter = ? AND is_cached = ?", subjectID, chapter, true).
		Order("created_at ASC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *summaryRepo) CreateCached(ctx context.Context, tx *gorm.DB, s *types.Summary) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	s.IsCached = true
	// conflict target is the partial unique index on (subject_id, chapter)
	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *summaryRepo) ListByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, limit int) ([]*types.Summary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Summary
	if studentID == uuid.Nil {
		return results, nil
	}

	q := transaction.WithContext(ctx).
		Where("student_id = ? AND is_cached = ?", studentID, false).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

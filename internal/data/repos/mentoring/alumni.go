package mentoring

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type AlumniRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Alumni) ([]*types.Alumni, error)
	// ListApproved returns approved alumni, highest bac score first.
	ListApproved(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Alumni, error)
}

type alumniRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlumniRepo(db *gorm.DB, baseLog *logger.Logger) AlumniRepo {
	repoLog := baseLog.With("repo", "AlumniRepo")
	return &alumniRepo{db: db, log: repoLog}
}

func (r *alumniRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Alumni) ([]*types.Alumni, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Alumni{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *alumniRepo) ListApproved(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Alumni, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Alumni
	q := transaction.WithContext(ctx).
		Where("approved = ?", true).
		Order("bac_score DESC").
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

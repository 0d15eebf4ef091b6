package mentoring

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type BookingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, bookings []*types.Booking) ([]*types.Booking, error)
	// ListByStudentID returns the student's bookings, newest first.
	ListByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, limit int) ([]*types.Booking, error)
}

type bookingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookingRepo(db *gorm.DB, baseLog *logger.Logger) BookingRepo {
	repoLog := baseLog.With("repo", "BookingRepo")
	return &bookingRepo{db: db, log: repoLog}
}

func (r *bookingRepo) Create(ctx context.Context, tx *gorm.DB, bookings []*types.Booking) ([]*types.Booking, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(bookings) == 0 {
		return []*types.Booking{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepo) ListByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, limit int) ([]*types.Booking, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Booking
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

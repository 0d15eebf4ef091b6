package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type CreateBookingInput struct {
	Subject            string `validate:"required,max=100"`
	RequestDescription string `validate:"required,max=2000"`
	// Whatsapp falls back to the student's profile number when blank.
	Whatsapp string `validate:"required,max=32"`
}

type BookingService interface {
	Create(ctx context.Context, student *types.Student, in CreateBookingInput) (*types.Booking, error)
	List(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.Booking, error)
}

type bookingService struct {
	log         *logger.Logger
	bookingRepo repos.BookingRepo
}

func NewBookingService(baseLog *logger.Logger, bookingRepo repos.BookingRepo) BookingService {
	return &bookingService{
		log:         baseLog.With("service", "BookingService"),
		bookingRepo: bookingRepo,
	}
}

func (s *bookingService) Create(ctx context.Context, student *types.Student, in CreateBookingInput) (*types.Booking, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.RequestDescription = strings.TrimSpace(in.RequestDescription)
	in.Whatsapp = strings.TrimSpace(in.Whatsapp)
	if in.Whatsapp == "" && student.Whatsapp != nil {
		in.Whatsapp = strings.TrimSpace(*student.Whatsapp)
	}
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	booking := &types.Booking{
		StudentID:          student.ID,
		Subject:            in.Subject,
		RequestDescription: in.RequestDescription,
		Whatsapp:           in.Whatsapp,
		Status:             types.BookingFirstOffer,
	}
	if _, err := s.bookingRepo.Create(ctx, nil, []*types.Booking{booking}); err != nil {
		s.log.Error("failed to save booking", "student_id", student.ID, "error", err)
		return nil, apierr.Persistence("booking", err)
	}
	s.log.Info("booking requested", "booking_id", booking.ID, "subject", booking.Subject)
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.bookingRepo.ListByStudentID(ctx, nil, studentID, limit)
}

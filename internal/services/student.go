package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type CreateStudentInput struct {
	Name        string  `validate:"required,max=100"`
	Stream      string  `validate:"required,oneof=science literature math_tech economics languages"`
	YearOfStudy int     `validate:"required,min=1,max=3"`
	Whatsapp    *string `validate:"omitempty,max=32"`
}

type StudentService interface {
	// Create onboards the identity; one profile per identity.
	Create(ctx context.Context, userID uuid.UUID, in CreateStudentInput) (*types.Student, error)
}

type studentService struct {
	log         *logger.Logger
	studentRepo repos.StudentRepo
}

func NewStudentService(baseLog *logger.Logger, studentRepo repos.StudentRepo) StudentService {
	return &studentService{
		log:         baseLog.With("service", "StudentService"),
		studentRepo: studentRepo,
	}
}

func (s *studentService) Create(ctx context.Context, userID uuid.UUID, in CreateStudentInput) (*types.Student, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Stream = strings.ToLower(strings.TrimSpace(in.Stream))
	if in.Whatsapp != nil {
		w := strings.TrimSpace(*in.Whatsapp)
		if w == "" {
			in.Whatsapp = nil
		} else {
			in.Whatsapp = &w
		}
	}
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	exists, err := s.studentRepo.ExistsByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("student lookup: %w", err)
	}
	if exists {
		return nil, apierr.ProfileExists()
	}

	student := &types.Student{
		UserID:      userID,
		Name:        in.Name,
		Stream:      types.Stream(in.Stream),
		YearOfStudy: in.YearOfStudy,
		Whatsapp:    in.Whatsapp,
	}
	if _, err := s.studentRepo.Create(ctx, nil, []*types.Student{student}); err != nil {
		s.log.Error("failed to save student", "user_id", userID, "error", err)
		return nil, apierr.Persistence("student", err)
	}
	s.log.Info("student onboarded", "student_id", student.ID, "stream", student.Stream)
	return student, nil
}

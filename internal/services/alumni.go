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

type CreateAlumniInput struct {
	Name       string  `validate:"required,max=100"`
	Stream     string  `validate:"required,oneof=science literature math_tech economics languages"`
	BacScore   float64 `validate:"required,min=10,max=20"`
	AdviceText string  `validate:"required,max=4000"`
	ResumeURL  *string `validate:"omitempty,url,max=500"`
}

type AlumniService interface {
	// Apply records an unapproved alumni application from the identity.
	Apply(ctx context.Context, userID uuid.UUID, in CreateAlumniInput) (*types.Alumni, error)
	ListApproved(ctx context.Context, limit int) ([]*types.Alumni, error)
}

type alumniService struct {
	log        *logger.Logger
	alumniRepo repos.AlumniRepo
}

func NewAlumniService(baseLog *logger.Logger, alumniRepo repos.AlumniRepo) AlumniService {
	return &alumniService{
		log:        baseLog.With("service", "AlumniService"),
		alumniRepo: alumniRepo,
	}
}

func (s *alumniService) Apply(ctx context.Context, userID uuid.UUID, in CreateAlumniInput) (*types.Alumni, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Stream = strings.ToLower(strings.TrimSpace(in.Stream))
	in.AdviceText = strings.TrimSpace(in.AdviceText)
	if in.ResumeURL != nil {
		u := strings.TrimSpace(*in.ResumeURL)
		if u == "" {
			in.ResumeURL = nil
		} else {
			in.ResumeURL = &u
		}
	}
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	row := &types.Alumni{
		SubmittedBy: userID,
		Name:        in.Name,
		Stream:      types.Stream(in.Stream),
		BacScore:    in.BacScore,
		AdviceText:  in.AdviceText,
		ResumeURL:   in.ResumeURL,
		Approved:    false,
	}
	if _, err := s.alumniRepo.Create(ctx, nil, []*types.Alumni{row}); err != nil {
		s.log.Error("failed to save alumni application", "user_id", userID, "error", err)
		return nil, apierr.Persistence("alumni profile", err)
	}
	s.log.Info("alumni application received", "alumni_id", row.ID, "stream", row.Stream)
	return row, nil
}

func (s *alumniService) ListApproved(ctx context.Context, limit int) ([]*types.Alumni, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.alumniRepo.ListApproved(ctx, nil, limit)
}

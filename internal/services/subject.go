package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type SubjectService interface {
	List(ctx context.Context, stream string) ([]*types.Subject, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Subject, error)
}

type subjectService struct {
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
}

func NewSubjectService(baseLog *logger.Logger, subjectRepo repos.SubjectRepo) SubjectService {
	return &subjectService{
		log:         baseLog.With("service", "SubjectService"),
		subjectRepo: subjectRepo,
	}
}

func (s *subjectService) List(ctx context.Context, stream string) ([]*types.Subject, error) {
	stream = strings.ToLower(strings.TrimSpace(stream))
	if stream != "" && !types.Stream(stream).Valid() {
		valid := lo.Map(types.Streams, func(st types.Stream, _ int) string { return string(st) })
		return nil, apierr.InvalidRequest(fmt.Errorf("stream must be one of: %s", strings.Join(valid, " ")))
	}
	return s.subjectRepo.List(ctx, nil, types.Stream(stream))
}

func (s *subjectService) Get(ctx context.Context, id uuid.UUID) (*types.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("subject lookup: %w", err)
	}
	if subject == nil {
		return nil, apierr.SubjectNotFound()
	}
	return subject, nil
}

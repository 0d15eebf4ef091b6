package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	rediscache "github.com/yungbote/bacprep-backend/internal/clients/redis"
	"github.com/yungbote/bacprep-backend/internal/data/repos"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/observability"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/llm"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type GenerateSummaryInput struct {
	SubjectID     uuid.UUID `validate:"required"`
	Chapter       string    `validate:"required,max=200"`
	SpecificTopic string    `validate:"max=300"`
}

type SummaryResult struct {
	Summary   *types.Summary
	Content   string
	FromCache bool
}

type SummaryService interface {
	Generate(ctx context.Context, studentID uuid.UUID, in GenerateSummaryInput) (*SummaryResult, error)
	List(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.Summary, error)
}

type summaryService struct {
	log         *logger.Logger
	summaryRepo repos.SummaryRepo
	subjectRepo repos.SubjectRepo
	cache       rediscache.SummaryCache
	completions llm.Provider
	profile     GenerationProfile
}

func NewSummaryService(
	baseLog *logger.Logger,
	summaryRepo repos.SummaryRepo,
	subjectRepo repos.SubjectRepo,
	cache rediscache.SummaryCache,
	completions llm.Provider,
	profile GenerationProfile,
) SummaryService {
	if cache == nil {
		cache = rediscache.NoopSummaryCache{}
	}
	return &summaryService{
		log:         baseLog.With("service", "SummaryService"),
		summaryRepo: summaryRepo,
		subjectRepo: subjectRepo,
		cache:       cache,
		completions: completions,
		profile:     profile,
	}
}

func (s *summaryService) Generate(ctx context.Context, studentID uuid.UUID, in GenerateSummaryInput) (*SummaryResult, error) {
	in.Chapter = strings.TrimSpace(in.Chapter)
	in.SpecificTopic = strings.TrimSpace(in.SpecificTopic)
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	ctx, span := observability.StartSpan(ctx, "summary.generate",
		attribute.String("subject_id", in.SubjectID.String()),
	)
	defer span.End()

	subject, err := s.subjectRepo.GetByID(ctx, nil, in.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("subject lookup: %w", err)
	}
	if subject == nil {
		return nil, apierr.SubjectNotFound()
	}

	if content, ok := s.lookupCached(ctx, subject.ID, in.Chapter); ok {
		span.SetAttributes(attribute.Bool("from_cache", true))
		row, err := s.deliver(ctx, studentID, subject.ID, in.Chapter, content)
		if err != nil {
			return nil, err
		}
		s.log.Info("using cached summary", "summary_id", row.ID, "chapter", in.Chapter)
		return &SummaryResult{Summary: row, Content: content, FromCache: true}, nil
	}

	s.log.Info("generating summary", "subject", subject.Name, "chapter", in.Chapter, "topic", in.SpecificTopic)
	resp, err := s.completions.Complete(ctx, llm.Request{
		System:      SummarySystemRole,
		Prompt:      BuildSummaryPrompt(subject.Name, in.Chapter, in.SpecificTopic),
		Model:       s.profile.Model,
		MaxTokens:   s.profile.MaxTokens,
		Temperature: s.profile.Temperature,
	})
	if err != nil {
		return nil, completionError(err)
	}
	content := resp.Text

	s.storeCached(ctx, studentID, subject.ID, in.Chapter, content)

	row, err := s.deliver(ctx, studentID, subject.ID, in.Chapter, content)
	if err != nil {
		return nil, err
	}
	s.log.Info("summary saved", "summary_id", row.ID, "length", len(content))
	return &SummaryResult{Summary: row, Content: content, FromCache: false}, nil
}

// lookupCached checks redis then the cached row. Cache errors degrade to a miss.
func (s *summaryService) lookupCached(ctx context.Context, subjectID uuid.UUID, chapter string) (string, bool) {
	metrics := observability.Current()

	hit, err := s.cache.Get(ctx, subjectID, chapter)
	if err != nil {
		s.log.Warn("summary cache read failed", "error", err)
	}
	metrics.ObserveSummaryLookup("redis", hit != nil)
	if hit != nil {
		return hit.Content, true
	}

	row, err := s.summaryRepo.GetCached(ctx, nil, subjectID, chapter)
	if err != nil {
		s.log.Warn("cached summary lookup failed", "error", err)
		return "", false
	}
	metrics.ObserveSummaryLookup("db", row != nil)
	if row == nil {
		return "", false
	}
	s.warmCache(ctx, row)
	return row.AIResponse, true
}

// storeCached writes the shared row. Failure or a lost race is logged only.
func (s *summaryService) storeCached(ctx context.Context, studentID, subjectID uuid.UUID, chapter, content string) {
	row := &types.Summary{
		StudentID:  studentID,
		SubjectID:  subjectID,
		Chapter:    chapter,
		AIResponse: content,
		IsCached:   true,
	}
	created, err := s.summaryRepo.CreateCached(ctx, nil, row)
	if err != nil {
		s.log.Error("cache error", "chapter", chapter, "error", err)
		return
	}
	if !created {
		s.log.Info("cached summary already present, keeping existing row", "chapter", chapter)
		return
	}
	s.warmCache(ctx, row)
}

func (s *summaryService) warmCache(ctx context.Context, row *types.Summary) {
	err := s.cache.Set(ctx, row.SubjectID, row.Chapter, &rediscache.CachedSummary{
		SummaryID: row.ID,
		Content:   row.AIResponse,
		CreatedAt: row.CreatedAt,
	})
	if err != nil {
		s.log.Warn("summary cache write failed", "error", err)
	}
}

func (s *summaryService) deliver(ctx context.Context, studentID, subjectID uuid.UUID, chapter, content string) (*types.Summary, error) {
	row := &types.Summary{
		StudentID:  studentID,
		SubjectID:  subjectID,
		Chapter:    chapter,
		AIResponse: content,
		IsCached:   false,
	}
	if _, err := s.summaryRepo.Create(ctx, nil, []*types.Summary{row}); err != nil {
		s.log.Error("failed to save summary", "error", err)
		return nil, apierr.Persistence("summary", err)
	}
	return row, nil
}

func (s *summaryService) List(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.Summary, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.summaryRepo.ListByStudentID(ctx, nil, studentID, limit)
}

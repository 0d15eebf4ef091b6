package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/observability"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/llm"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

const (
	DefaultQuestionCount = 5
	MaxQuestionCount     = 20
)

type GenerateQuizInput struct {
	SubjectID    uuid.UUID `validate:"required"`
	Chapter      string    `validate:"required,max=200"`
	Difficulty   string    `validate:"omitempty,oneof=easy medium hard"`
	NumQuestions int       `validate:"omitempty,min=1,max=20"`
}

type GradeQuizOutput struct {
	GradeResult
	Quiz      *types.Quiz
	Questions []types.Question
}

type QuizService interface {
	Generate(ctx context.Context, studentID uuid.UUID, in GenerateQuizInput) (*types.Quiz, []types.Question, error)
	Grade(ctx context.Context, studentID, quizID uuid.UUID, answers []string) (*GradeQuizOutput, error)
	List(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.Quiz, error)
	// Get returns the quiz with its questions; answers and explanations are
	// withheld until the quiz is graded.
	Get(ctx context.Context, studentID, quizID uuid.UUID) (*types.Quiz, []types.Question, error)
}

type quizService struct {
	log         *logger.Logger
	quizRepo    repos.QuizRepo
	subjectRepo repos.SubjectRepo
	completions llm.Provider
	profile     GenerationProfile
	now         func() time.Time
}

func NewQuizService(
	baseLog *logger.Logger,
	quizRepo repos.QuizRepo,
	subjectRepo repos.SubjectRepo,
	completions llm.Provider,
	profile GenerationProfile,
) QuizService {
	return &quizService{
		log:         baseLog.With("service", "QuizService"),
		quizRepo:    quizRepo,
		subjectRepo: subjectRepo,
		completions: completions,
		profile:     profile,
		now:         time.Now,
	}
}

func (s *quizService) Generate(ctx context.Context, studentID uuid.UUID, in GenerateQuizInput) (*types.Quiz, []types.Question, error) {
	in.Chapter = strings.TrimSpace(in.Chapter)
	in.Difficulty = strings.ToLower(strings.TrimSpace(in.Difficulty))
	if err := validate.Struct(in); err != nil {
		return nil, nil, validationError(err)
	}
	difficulty := types.Difficulty(in.Difficulty)
	if difficulty == "" {
		difficulty = types.DifficultyMedium
	}
	count := in.NumQuestions
	if count == 0 {
		count = DefaultQuestionCount
	}

	ctx, span := observability.StartSpan(ctx, "quiz.generate",
		attribute.String("subject_id", in.SubjectID.String()),
		attribute.String("difficulty", string(difficulty)),
		attribute.Int("num_questions", count),
	)
	defer span.End()

	subject, err := s.subjectRepo.GetByID(ctx, nil, in.SubjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("subject lookup: %w", err)
	}
	if subject == nil {
		return nil, nil, apierr.SubjectNotFound()
	}

	s.log.Info("generating quiz", "subject", subject.Name, "chapter", in.Chapter, "difficulty", difficulty, "count", count)
	resp, err := s.completions.Complete(ctx, llm.Request{
		System:      QuizSystemRole,
		Prompt:      BuildQuizPrompt(subject.Name, in.Chapter, difficulty, count),
		Model:       s.profile.Model,
		MaxTokens:   s.profile.MaxTokens,
		Temperature: s.profile.Temperature,
	})
	if err != nil {
		return nil, nil, completionError(err)
	}

	questions, err := ParseQuestionSet(resp.Text, count)
	if err != nil {
		s.log.Warn("malformed quiz generation", "error", err, "length", len(resp.Text))
		return nil, nil, apierr.MalformedGeneration(err)
	}

	quiz := &types.Quiz{
		StudentID:  studentID,
		SubjectID:  subject.ID,
		Chapter:    in.Chapter,
		Difficulty: difficulty,
	}
	if err := quiz.SetQuestions(questions); err != nil {
		return nil, nil, apierr.MalformedGeneration(err)
	}
	if _, err := s.quizRepo.Create(ctx, nil, []*types.Quiz{quiz}); err != nil {
		s.log.Error("failed to save quiz", "error", err)
		return nil, nil, apierr.Persistence("quiz", err)
	}
	s.log.Info("quiz saved", "quiz_id", quiz.ID, "total_questions", quiz.TotalQuestions)
	return quiz, questions, nil
}

func (s *quizService) Grade(ctx context.Context, studentID, quizID uuid.UUID, answers []string) (*GradeQuizOutput, error) {
	ctx, span := observability.StartSpan(ctx, "quiz.grade", attribute.String("quiz_id", quizID.String()))
	defer span.End()

	quiz, err := s.quizRepo.GetForStudent(ctx, nil, quizID, studentID)
	if err != nil {
		return nil, fmt.Errorf("quiz lookup: %w", err)
	}
	if quiz == nil {
		return nil, apierr.QuizNotFound()
	}
	if quiz.IsGraded() {
		return nil, apierr.AlreadyGraded()
	}

	questions, err := quiz.Questions()
	if err != nil {
		s.log.Error("stored quiz has unreadable questions", "quiz_id", quiz.ID, "error", err)
		return nil, err
	}
	result := ScoreAnswers(questions, answers)

	completedAt := s.now().UTC()
	updated, err := s.quizRepo.MarkGraded(ctx, nil, quiz.ID, studentID, result.Score, completedAt)
	if err != nil {
		s.log.Error("failed to update quiz", "quiz_id", quiz.ID, "error", err)
		return nil, apierr.Persistence("quiz", err)
	}
	if !updated {
		// a concurrent submit graded it first
		return nil, apierr.AlreadyGraded()
	}
	quiz.Score = &result.Score
	quiz.CompletedAt = &completedAt

	observability.Current().ObserveQuizGraded(result.Score)
	s.log.Info("quiz scored", "quiz_id", quiz.ID, "correct", result.CorrectAnswers, "total", result.TotalQuestions, "score", result.Score)
	return &GradeQuizOutput{GradeResult: result, Quiz: quiz, Questions: questions}, nil
}

func (s *quizService) List(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.Quiz, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.quizRepo.ListByStudentID(ctx, nil, studentID, limit)
}

func (s *quizService) Get(ctx context.Context, studentID, quizID uuid.UUID) (*types.Quiz, []types.Question, error) {
	quiz, err := s.quizRepo.GetForStudent(ctx, nil, quizID, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("quiz lookup: %w", err)
	}
	if quiz == nil {
		return nil, nil, apierr.QuizNotFound()
	}
	questions, err := quiz.Questions()
	if err != nil {
		return nil, nil, err
	}
	if !quiz.IsGraded() {
		questions = withoutAnswers(questions)
	}
	return quiz, questions, nil
}

func withoutAnswers(qs []types.Question) []types.Question {
	out := make([]types.Question, len(qs))
	for i, q := range qs {
		out[i] = types.Question{Question: q.Question, Options: q.Options}
	}
	return out
}

package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	"github.com/yungbote/bacprep-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/llm"
)

type quizFixture struct {
	db      *gorm.DB
	svc     QuizService
	mock    *llm.MockProvider
	quizzes repos.QuizRepo
	student *types.Student
	subject *types.Subject
}

func newQuizFixture(t *testing.T, responses ...llm.MockResponse) *quizFixture {
	t.Helper()
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	mock := llm.NewMockProvider(responses...)
	quizzes := repos.NewQuizRepo(db, log)
	svc := NewQuizService(log, quizzes, repos.NewSubjectRepo(db, log), mock, DefaultGenerationConfig().Quiz)
	return &quizFixture{
		db:      db,
		svc:     svc,
		mock:    mock,
		quizzes: quizzes,
		student: testutil.SeedStudent(t, ctx, db, "Lina"),
		subject: testutil.SeedSubject(t, ctx, db, "Mathematics", "Functions", "Sequences"),
	}
}

func (f *quizFixture) countQuizzes(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&types.Quiz{}).Count(&n).Error)
	return n
}

func TestQuizEndToEnd(t *testing.T) {
	f := newQuizFixture(t, llm.MockResponse{Text: quizJSON("A", "B", "B", "C", "D")})
	ctx := context.Background()

	quiz, questions, err := f.svc.Generate(ctx, f.student.ID, GenerateQuizInput{
		SubjectID:  f.subject.ID,
		Chapter:    "Functions",
		Difficulty: "medium",
	})
	require.NoError(t, err)
	require.Len(t, questions, 5)
	require.Equal(t, 5, quiz.TotalQuestions)
	require.Nil(t, quiz.Score)
	require.Nil(t, quiz.CompletedAt)
	require.Equal(t, "B", questions[2].CorrectAnswer, "generate response carries answers")

	call, ok := f.mock.LastCall()
	require.True(t, ok)
	require.Equal(t, QuizSystemRole, call.System)
	require.Equal(t, 2000, call.MaxTokens)
	require.InDelta(t, 0.7, call.Temperature, 1e-9)
	require.Contains(t, call.Prompt, `"Mathematics"`)

	out, err := f.svc.Grade(ctx, f.student.ID, quiz.ID, []string{"A", "B", "A", "C", "D"})
	require.NoError(t, err)
	require.Equal(t, 80, out.Score)
	require.Equal(t, 4, out.CorrectAnswers)
	require.Equal(t, 5, out.TotalQuestions)
	require.False(t, out.Results[2].IsCorrect)
	require.NotNil(t, out.Quiz.CompletedAt)
	require.Equal(t, 80, *out.Quiz.Score)
	require.Len(t, out.Questions, 5)
	require.Equal(t, "B", out.Questions[2].CorrectAnswer, "graded response carries answers")
}

func TestQuizGenerateDefaults(t *testing.T) {
	f := newQuizFixture(t, llm.MockResponse{Text: quizJSON("A", "B", "C", "D", "A")})

	quiz, _, err := f.svc.Generate(context.Background(), f.student.ID, GenerateQuizInput{
		SubjectID: f.subject.ID,
		Chapter:   "Sequences",
	})
	require.NoError(t, err)
	require.Equal(t, types.DifficultyMedium, quiz.Difficulty)
	call, _ := f.mock.LastCall()
	require.Contains(t, call.Prompt, "Generate 5 BAC-style")
	require.Contains(t, call.Prompt, "medium difficulty")
}

func TestQuizGenerateRejectsBadInputBeforeUpstream(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	for name, in := range map[string]GenerateQuizInput{
		"difficulty": {SubjectID: f.subject.ID, Chapter: "Functions", Difficulty: "extreme"},
		"too many":   {SubjectID: f.subject.ID, Chapter: "Functions", NumQuestions: 21},
		"negative":   {SubjectID: f.subject.ID, Chapter: "Functions", NumQuestions: -1},
		"no chapter": {SubjectID: f.subject.ID, Chapter: "  "},
		"no subject": {Chapter: "Functions"},
	} {
		_, _, err := f.svc.Generate(ctx, f.student.ID, in)
		require.True(t, apierr.HasCode(err, apierr.CodeInvalidRequest), name)
	}
	require.Equal(t, 0, f.mock.CallCount())
}

func TestQuizGenerateSubjectNotFound(t *testing.T) {
	f := newQuizFixture(t)

	_, _, err := f.svc.Generate(context.Background(), f.student.ID, GenerateQuizInput{
		SubjectID: uuid.New(),
		Chapter:   "Functions",
	})
	require.True(t, apierr.HasCode(err, apierr.CodeSubjectNotFound))
	require.Equal(t, 0, f.mock.CallCount())
}

func TestQuizGenerateMalformed(t *testing.T) {
	f := newQuizFixture(t,
		llm.MockResponse{Text: "Sure! Here are five questions..."},
		llm.MockResponse{Text: quizJSON("A", "B")},
	)
	ctx := context.Background()
	in := GenerateQuizInput{SubjectID: f.subject.ID, Chapter: "Functions"}

	_, _, err := f.svc.Generate(ctx, f.student.ID, in)
	require.True(t, apierr.HasCode(err, apierr.CodeMalformedGeneration))

	_, _, err = f.svc.Generate(ctx, f.student.ID, in)
	require.True(t, apierr.HasCode(err, apierr.CodeMalformedGeneration), "count mismatch")

	require.Zero(t, f.countQuizzes(t))
}

func TestQuizGenerateUpstreamFailures(t *testing.T) {
	f := newQuizFixture(t,
		llm.MockResponse{Err: &llm.UpstreamStatusError{Status: http.StatusTooManyRequests, Body: "rate limited"}},
		llm.MockResponse{Err: &llm.UpstreamUnavailableError{}},
	)
	ctx := context.Background()
	in := GenerateQuizInput{SubjectID: f.subject.ID, Chapter: "Functions"}

	_, _, err := f.svc.Generate(ctx, f.student.ID, in)
	require.True(t, apierr.HasCode(err, apierr.CodeUpstreamError))
	require.EqualError(t, err, "completion API error: 429")

	_, _, err = f.svc.Generate(ctx, f.student.ID, in)
	require.True(t, apierr.HasCode(err, apierr.CodeUpstreamUnavailable))

	require.Equal(t, 2, f.mock.CallCount(), "no retries")
	require.Zero(t, f.countQuizzes(t))
}

func TestQuizGradeTwiceKeepsFirstScore(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()
	quiz := testutil.SeedQuiz(t, ctx, f.db, f.student.ID, f.subject.ID, "A", "B", "C")

	first, err := f.svc.Grade(ctx, f.student.ID, quiz.ID, []string{"A", "D", "D"})
	require.NoError(t, err)
	require.Equal(t, 33, first.Score)

	_, err = f.svc.Grade(ctx, f.student.ID, quiz.ID, []string{"A", "B", "C"})
	require.True(t, apierr.HasCode(err, apierr.CodeAlreadyGraded))
	require.EqualError(t, err, "Quiz already completed")

	stored, err := f.quizzes.GetForStudent(ctx, nil, quiz.ID, f.student.ID)
	require.NoError(t, err)
	require.Equal(t, 33, *stored.Score)
}

func TestQuizGradeOtherStudentsQuiz(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()
	intruder := testutil.SeedStudent(t, ctx, f.db, "Intruder")
	quiz := testutil.SeedQuiz(t, ctx, f.db, f.student.ID, f.subject.ID, "A")

	_, err := f.svc.Grade(ctx, intruder.ID, quiz.ID, []string{"A"})
	require.True(t, apierr.HasCode(err, apierr.CodeQuizNotFound))
	require.EqualError(t, err, "Quiz not found or access denied")

	_, _, err = f.svc.Get(ctx, intruder.ID, quiz.ID)
	require.True(t, apierr.HasCode(err, apierr.CodeQuizNotFound))

	stored, err := f.quizzes.GetForStudent(ctx, nil, quiz.ID, f.student.ID)
	require.NoError(t, err)
	require.False(t, stored.IsGraded())
}

func TestQuizGetWithholdsAnswersUntilGraded(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()
	quiz := testutil.SeedQuiz(t, ctx, f.db, f.student.ID, f.subject.ID, "C", "D")

	_, open, err := f.svc.Get(ctx, f.student.ID, quiz.ID)
	require.NoError(t, err)
	require.Len(t, open, 2)
	require.Empty(t, open[0].CorrectAnswer)
	require.Empty(t, open[0].Explanation)
	require.Len(t, open[0].Options, 4)

	_, err = f.svc.Grade(ctx, f.student.ID, quiz.ID, []string{"C", "D"})
	require.NoError(t, err)

	_, graded, err := f.svc.Get(ctx, f.student.ID, quiz.ID)
	require.NoError(t, err)
	require.Equal(t, "C", graded[0].CorrectAnswer)

	list, err := f.svc.List(ctx, f.student.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

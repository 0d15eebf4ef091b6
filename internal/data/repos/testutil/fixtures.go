package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/bacprep-backend/internal/domain"
)

func SeedStudent(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Student {
	tb.Helper()
	s := &types.Student{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        name,
		Stream:      types.StreamScience,
		YearOfStudy: 3,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedSubject(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, chapters ...string) *types.Subject {
	tb.Helper()
	raw, _ := json.Marshal(chapters)
	s := &types.Subject{
		ID:       uuid.New(),
		Name:     name,
		Stream:   types.StreamScience,
		Chapters: datatypes.JSON(raw),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed subject: %v", err)
	}
	return s
}

// SeedQuiz stores an open quiz whose correct answers are given in order.
func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, studentID, subjectID uuid.UUID, correct ...string) *types.Quiz {
	tb.Helper()
	qs := make([]types.Question, 0, len(correct))
	for _, c := range correct {
		qs = append(qs, types.Question{
			Question:      "question " + c,
			Options:       []string{"A) one", "B) two", "C) three", "D) four"},
			CorrectAnswer: c,
			Explanation:   "because " + c,
		})
	}
	q := &types.Quiz{
		ID:         uuid.New(),
		StudentID:  studentID,
		SubjectID:  subjectID,
		Chapter:    "Functions",
		Difficulty: types.DifficultyMedium,
	}
	if err := q.SetQuestions(qs); err != nil {
		tb.Fatalf("encode questions: %v", err)
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

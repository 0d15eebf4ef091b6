package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/bacprep-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bacprep-backend/internal/domain"
)

func TestStudentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewStudentRepo(db, testutil.Logger(t))

	userID := uuid.New()
	s := &types.Student{
		UserID:      userID,
		Name:        "Amina",
		Stream:      types.StreamMathTech,
		YearOfStudy: 3,
	}
	if _, err := repo.Create(ctx, tx, []*types.Student{s}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == uuid.Nil {
		t.Fatalf("Create should assign an id")
	}

	got, err := repo.GetByUserID(ctx, tx, userID)
	if err != nil || got == nil || got.ID != s.ID {
		t.Fatalf("GetByUserID: got=%+v err=%v", got, err)
	}
	if missing, err := repo.GetByUserID(ctx, tx, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByUserID(unknown): got=%+v err=%v", missing, err)
	}
	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{s.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if ok, err := repo.ExistsByUserID(ctx, tx, userID); err != nil || !ok {
		t.Fatalf("ExistsByUserID: ok=%v err=%v", ok, err)
	}

	dup := &types.Student{UserID: userID, Name: "Twin", Stream: types.StreamScience, YearOfStudy: 2}
	if _, err := repo.Create(ctx, tx, []*types.Student{dup}); err == nil {
		t.Fatalf("second profile for the same identity should violate the unique index")
	}
}

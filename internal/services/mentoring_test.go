package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	"github.com/yungbote/bacprep-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
)

type failingBookingRepo struct {
	repos.BookingRepo
}

func (failingBookingRepo) Create(context.Context, *gorm.DB, []*types.Booking) ([]*types.Booking, error) {
	return nil, errors.New("relation \"bookings\" does not exist")
}

func TestBookingCreateAndList(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewBookingService(log, repos.NewBookingRepo(db, log))
	ctx := context.Background()

	phone := "+212600000001"
	student := testutil.SeedStudent(t, ctx, db, "Ayoub")
	student.Whatsapp = &phone

	b, err := svc.Create(ctx, student, CreateBookingInput{
		Subject:            " Physics ",
		RequestDescription: "Help with RC circuits",
	})
	require.NoError(t, err)
	require.Equal(t, "Physics", b.Subject)
	require.Equal(t, phone, b.Whatsapp, "blank number falls back to the profile")
	require.Equal(t, types.BookingFirstOffer, b.Status)

	other := testutil.SeedStudent(t, ctx, db, "Lina")
	_, err = svc.Create(ctx, other, CreateBookingInput{
		Subject:            "Mathematics",
		RequestDescription: "Limits",
		Whatsapp:           "+212611111111",
	})
	require.NoError(t, err)

	mine, err := svc.List(ctx, student.ID, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, b.ID, mine[0].ID)
}

func TestBookingCreateValidation(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewBookingService(log, repos.NewBookingRepo(db, log))
	ctx := context.Background()
	student := testutil.SeedStudent(t, ctx, db, "Hamza")

	for name, in := range map[string]CreateBookingInput{
		"subject":     {RequestDescription: "x", Whatsapp: "+212600000000"},
		"description": {Subject: "Physics", RequestDescription: "  ", Whatsapp: "+212600000000"},
		"whatsapp":    {Subject: "Physics", RequestDescription: "x"},
	} {
		_, err := svc.Create(ctx, student, in)
		require.True(t, apierr.HasCode(err, apierr.CodeInvalidRequest), name)
	}

	var count int64
	require.NoError(t, db.Model(&types.Booking{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestBookingCreatePersistenceError(t *testing.T) {
	log := testutil.Logger(t)
	svc := NewBookingService(log, failingBookingRepo{})
	student := &types.Student{ID: uuid.New()}

	_, err := svc.Create(context.Background(), student, CreateBookingInput{
		Subject:            "Physics",
		RequestDescription: "x",
		Whatsapp:           "+212600000000",
	})
	require.True(t, apierr.HasCode(err, apierr.CodePersistence))
	require.EqualError(t, err, "Failed to save booking")
}

func TestAlumniApply(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewAlumniRepo(db, log)
	svc := NewAlumniService(log, repo)
	ctx := context.Background()
	blank := " "

	row, err := svc.Apply(ctx, uuid.New(), CreateAlumniInput{
		Name:       " Youssef ",
		Stream:     "Science",
		BacScore:   18.75,
		AdviceText: "Do past papers every week.",
		ResumeURL:  &blank,
	})
	require.NoError(t, err)
	require.Equal(t, "Youssef", row.Name)
	require.Equal(t, types.StreamScience, row.Stream)
	require.False(t, row.Approved)
	require.Nil(t, row.ResumeURL)

	approved, err := svc.ListApproved(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, approved, "applications are hidden until approved")

	require.NoError(t, db.Model(&types.Alumni{}).Where("id = ?", row.ID).Update("approved", true).Error)
	approved, err = svc.ListApproved(ctx, 0)
	require.NoError(t, err)
	require.Len(t, approved, 1)
}

func TestAlumniApplyValidation(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewAlumniService(log, repos.NewAlumniRepo(db, log))
	notURL := "resume.pdf"

	for name, in := range map[string]CreateAlumniInput{
		"score low":  {Name: "A", Stream: "science", BacScore: 9.99, AdviceText: "x"},
		"score high": {Name: "A", Stream: "science", BacScore: 20.5, AdviceText: "x"},
		"stream":     {Name: "A", Stream: "science_math", BacScore: 15, AdviceText: "x"},
		"advice":     {Name: "A", Stream: "science", BacScore: 15},
		"resume":     {Name: "A", Stream: "science", BacScore: 15, AdviceText: "x", ResumeURL: &notURL},
	} {
		_, err := svc.Apply(context.Background(), uuid.New(), in)
		require.True(t, apierr.HasCode(err, apierr.CodeInvalidRequest), name)
	}
}

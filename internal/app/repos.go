package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type Repos struct {
	Student repos.StudentRepo
	Subject repos.SubjectRepo
	Quiz    repos.QuizRepo
	Summary repos.SummaryRepo
	Booking repos.BookingRepo
	Alumni  repos.AlumniRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Student: repos.NewStudentRepo(db, log),
		Subject: repos.NewSubjectRepo(db, log),
		Quiz:    repos.NewQuizRepo(db, log),
		Summary: repos.NewSummaryRepo(db, log),
		Booking: repos.NewBookingRepo(db, log),
		Alumni:  repos.NewAlumniRepo(db, log),
	}
}

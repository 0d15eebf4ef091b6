package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/data/repos/learning"
	"github.com/yungbote/bacprep-backend/internal/data/repos/mentoring"
	"github.com/yungbote/bacprep-backend/internal/data/repos/user"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type StudentRepo = user.StudentRepo
type SubjectRepo = learning.SubjectRepo
type QuizRepo = learning.QuizRepo
type SummaryRepo = learning.SummaryRepo
type BookingRepo = mentoring.BookingRepo
type AlumniRepo = mentoring.AlumniRepo

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return user.NewStudentRepo(db, baseLog)
}

func NewSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SubjectRepo {
	return learning.NewSubjectRepo(db, baseLog)
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return learning.NewQuizRepo(db, baseLog)
}

func NewSummaryRepo(db *gorm.DB, baseLog *logger.Logger) SummaryRepo {
	return learning.NewSummaryRepo(db, baseLog)
}

func NewBookingRepo(db *gorm.DB, baseLog *logger.Logger) BookingRepo {
	return mentoring.NewBookingRepo(db, baseLog)
}

func NewAlumniRepo(db *gorm.DB, baseLog *logger.Logger) AlumniRepo {
	return mentoring.NewAlumniRepo(db, baseLog)
}

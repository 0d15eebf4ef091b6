package app

import (
	"gorm.io/gorm"

	httpH "github.com/yungbote/bacprep-backend/internal/http/handlers"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Quiz    *httpH.QuizHandler
	Summary *httpH.SummaryHandler
	Student *httpH.StudentHandler
	Subject *httpH.SubjectHandler

	Mentoring *httpH.MentoringHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(db),
		Quiz:    httpH.NewQuizHandler(log, services.Quiz),
		Summary: httpH.NewSummaryHandler(log, services.Summary),
		Student: httpH.NewStudentHandler(services.Student),
		Subject: httpH.NewSubjectHandler(services.Subject),

		Mentoring: httpH.NewMentoringHandler(services.Booking, services.Alumni),
	}
}

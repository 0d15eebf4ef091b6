package app

import (
	"fmt"

	"github.com/yungbote/bacprep-backend/internal/platform/logger"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type Services struct {
	Identity services.IdentityService
	Student  services.StudentService
	Subject  services.SubjectService
	Quiz     services.QuizService
	Summary  services.SummaryService
	Booking  services.BookingService
	Alumni   services.AlumniService
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	identity, err := services.NewIdentityService(log, repos.Student, cfg.Identity)
	if err != nil {
		return Services{}, fmt.Errorf("init identity service: %w", err)
	}

	return Services{
		Identity: identity,
		Student:  services.NewStudentService(log, repos.Student),
		Subject:  services.NewSubjectService(log, repos.Subject),
		Quiz:     services.NewQuizService(log, repos.Quiz, repos.Subject, clients.Completions, cfg.Generation.Quiz),
		Summary: services.NewSummaryService(log, repos.Summary, repos.Subject, clients.SummaryCache,
			clients.Completions, cfg.Generation.Summary),
		Booking: services.NewBookingService(log, repos.Booking),
		Alumni:  services.NewAlumniService(log, repos.Alumni),
	}, nil
}

package app

import (
	"github.com/gin-gonic/gin"

	bphttp "github.com/yungbote/bacprep-backend/internal/http"
	"github.com/yungbote/bacprep-backend/internal/observability"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return bphttp.NewRouter(bphttp.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		ServiceName:    cfg.ServiceName,
		AuthMiddleware: middleware.Auth,
		QuizHandler:    handlers.Quiz,
		SummaryHandler: handlers.Summary,
		StudentHandler: handlers.Student,
		SubjectHandler: handlers.Subject,
		HealthHandler:  handlers.Health,

		MentoringHandler: handlers.Mentoring,
	})
}

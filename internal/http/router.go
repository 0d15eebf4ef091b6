package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/bacprep-backend/internal/http/handlers"
	httpMW "github.com/yungbote/bacprep-backend/internal/http/middleware"
	"github.com/yungbote/bacprep-backend/internal/observability"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string

	AuthMiddleware *httpMW.AuthMiddleware

	QuizHandler    *httpH.QuizHandler
	SummaryHandler *httpH.SummaryHandler
	StudentHandler *httpH.StudentHandler
	SubjectHandler *httpH.SubjectHandler
	HealthHandler  *httpH.HealthHandler

	MentoringHandler *httpH.MentoringHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	if cfg.AuthMiddleware == nil {
		return r
	}
	requireStudent := cfg.AuthMiddleware.RequireStudent()

	// Functions
	fn := r.Group("/functions/v1")
	fn.Use(requireStudent)
	{
		if cfg.QuizHandler != nil {
			fn.POST("/generate-quiz", cfg.QuizHandler.GenerateQuiz)
			fn.POST("/submit-quiz", cfg.QuizHandler.SubmitQuiz)
		}
		if cfg.SummaryHandler != nil {
			fn.POST("/generate-summary", cfg.SummaryHandler.GenerateSummary)
		}
	}

	api := r.Group("/api")

	// Onboarding (identity only)
	if cfg.StudentHandler != nil {
		api.POST("/students", cfg.AuthMiddleware.RequireIdentity(), cfg.StudentHandler.CreateStudent)
	}
	if cfg.MentoringHandler != nil {
		api.POST("/alumni", cfg.AuthMiddleware.RequireIdentity(), cfg.MentoringHandler.ApplyAlumni)
	}

	protected := api.Group("/")
	protected.Use(requireStudent)
	{
		if cfg.StudentHandler != nil {
			protected.GET("/me", cfg.StudentHandler.GetMe)
		}
		if cfg.SubjectHandler != nil {
			protected.GET("/subjects", cfg.SubjectHandler.ListSubjects)
			protected.GET("/subjects/:id", cfg.SubjectHandler.GetSubject)
		}
		if cfg.QuizHandler != nil {
			protected.GET("/quizzes", cfg.QuizHandler.ListQuizzes)
			protected.GET("/quizzes/:id", cfg.QuizHandler.GetQuiz)
		}
		if cfg.SummaryHandler != nil {
			protected.GET("/summaries", cfg.SummaryHandler.ListSummaries)
		}
		if cfg.MentoringHandler != nil {
			protected.POST("/bookings", cfg.MentoringHandler.CreateBooking)
			protected.GET("/bookings", cfg.MentoringHandler.ListBookings)
			protected.GET("/alumni", cfg.MentoringHandler.ListAlumni)
		}
	}

	return r
}

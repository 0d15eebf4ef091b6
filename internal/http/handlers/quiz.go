package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/http/response"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type QuizHandler struct {
	log  *logger.Logger
	quiz services.QuizService
}

func NewQuizHandler(log *logger.Logger, quiz services.QuizService) *QuizHandler {
	return &QuizHandler{log: log.With("handler", "QuizHandler"), quiz: quiz}
}

type generateQuizRequest struct {
	SubjectID    uuid.UUID `json:"subject_id"`
	Chapter      string    `json:"chapter"`
	Difficulty   string    `json:"difficulty"`
	NumQuestions int       `json:"num_questions"`
}

type submitQuizRequest struct {
	QuizID  uuid.UUID `json:"quiz_id"`
	Answers []string  `json:"answers"`
}

// quizView is a stored attempt plus its decoded question set.
type quizView struct {
	*types.Quiz
	Questions []types.Question `json:"questions"`
}

// POST /functions/v1/generate-quiz
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req generateQuizRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	quiz, questions, err := h.quiz.Generate(c.Request.Context(), student.ID, services.GenerateQuizInput{
		SubjectID:    req.SubjectID,
		Chapter:      req.Chapter,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":   true,
		"quiz_id":   quiz.ID,
		"questions": questions,
	})
}

// POST /functions/v1/submit-quiz
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req submitQuizRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	out, err := h.quiz.Grade(c.Request.Context(), student.ID, req.QuizID, req.Answers)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":         true,
		"score":           out.Score,
		"correct_answers": out.CorrectAnswers,
		"total_questions": out.TotalQuestions,
		"percentage":      out.Score,
		"results":         out.Results,
		"quiz":            quizView{Quiz: out.Quiz, Questions: out.Questions},
	})
}

// GET /api/quizzes?limit=
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	quizzes, err := h.quiz.List(c.Request.Context(), student.ID, limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quizzes": quizzes})
}

// GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	quiz, questions, err := h.quiz.Get(c.Request.Context(), student.ID, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quiz": quizView{Quiz: quiz, Questions: questions}})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bacprep-backend/internal/http/response"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type StudentHandler struct {
	students services.StudentService
}

func NewStudentHandler(students services.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

type createStudentRequest struct {
	Name        string  `json:"name"`
	Stream      string  `json:"stream"`
	YearOfStudy int     `json:"year_of_study"`
	Whatsapp    *string `json:"whatsapp"`
}

// POST /api/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req createStudentRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	student, err := h.students.Create(c.Request.Context(), userID, services.CreateStudentInput{
		Name:        req.Name,
		Stream:      req.Stream,
		YearOfStudy: req.YearOfStudy,
		Whatsapp:    req.Whatsapp,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// GET /api/me
func (h *StudentHandler) GetMe(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"me": student})
}

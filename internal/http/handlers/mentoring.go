package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bacprep-backend/internal/http/response"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type MentoringHandler struct {
	bookings services.BookingService
	alumni   services.AlumniService
}

func NewMentoringHandler(bookings services.BookingService, alumni services.AlumniService) *MentoringHandler {
	return &MentoringHandler{bookings: bookings, alumni: alumni}
}

type createBookingRequest struct {
	Subject            string `json:"subject"`
	RequestDescription string `json:"request_description"`
	Whatsapp           string `json:"whatsapp"`
}

type createAlumniRequest struct {
	Name       string  `json:"name"`
	Stream     string  `json:"stream"`
	BacScore   float64 `json:"bac_score"`
	AdviceText string  `json:"advice_text"`
	ResumeURL  *string `json:"resume_url"`
}

// POST /api/bookings
func (h *MentoringHandler) CreateBooking(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req createBookingRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	booking, err := h.bookings.Create(c.Request.Context(), student, services.CreateBookingInput{
		Subject:            req.Subject,
		RequestDescription: req.RequestDescription,
		Whatsapp:           req.Whatsapp,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GET /api/bookings?limit=
func (h *MentoringHandler) ListBookings(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	bookings, err := h.bookings.List(c.Request.Context(), student.ID, limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"bookings": bookings})
}

// POST /api/alumni
func (h *MentoringHandler) ApplyAlumni(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req createAlumniRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	row, err := h.alumni.Apply(c.Request.Context(), userID, services.CreateAlumniInput{
		Name:       req.Name,
		Stream:     req.Stream,
		BacScore:   req.BacScore,
		AdviceText: req.AdviceText,
		ResumeURL:  req.ResumeURL,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"alumni": row})
}

// GET /api/alumni?limit=
func (h *MentoringHandler) ListAlumni(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := h.alumni.ListApproved(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"alumni": rows})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/bacprep-backend/internal/http/response"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type SummaryHandler struct {
	log     *logger.Logger
	summary services.SummaryService
}

func NewSummaryHandler(log *logger.Logger, summary services.SummaryService) *SummaryHandler {
	return &SummaryHandler{log: log.With("handler", "SummaryHandler"), summary: summary}
}

type generateSummaryRequest struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	Chapter       string    `json:"chapter"`
	SpecificTopic string    `json:"specific_topic"`
}

// POST /functions/v1/generate-summary
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var req generateSummaryRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	res, err := h.summary.Generate(c.Request.Context(), student.ID, services.GenerateSummaryInput{
		SubjectID:     req.SubjectID,
		Chapter:       req.Chapter,
		SpecificTopic: req.SpecificTopic,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":    true,
		"summary_id": res.Summary.ID,
		"content":    res.Content,
		"from_cache": res.FromCache,
	})
}

// GET /api/summaries?limit=
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	student, err := currentStudent(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	summaries, err := h.summary.List(c.Request.Context(), student.ID, limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"summaries": summaries})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/http/response"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type SubjectHandler struct {
	subjects services.SubjectService
}

func NewSubjectHandler(subjects services.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

type subjectView struct {
	*types.Subject
	Chapters []string `json:"chapters"`
}

func toSubjectView(s *types.Subject) subjectView {
	chapters := s.ChapterList()
	if chapters == nil {
		chapters = []string{}
	}
	return subjectView{Subject: s, Chapters: chapters}
}

// GET /api/subjects?stream=
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjects.List(c.Request.Context(), c.Query("stream"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	out := make([]subjectView, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, toSubjectView(s))
	}
	response.RespondOK(c, gin.H{"subjects": out})
}

// GET /api/subjects/:id
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	subject, err := h.subjects.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subject": toSubjectView(subject)})
}

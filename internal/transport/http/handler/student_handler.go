package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"school-system-backend/internal/service"
	"school-system-backend/internal/transport/http/response"
)

type StudentHandler struct {
	svc *service.StudentService
}

func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

func (h *StudentHandler) Mount(g *gin.RouterGroup) {
	g.GET("/students/:id/parents", h.Parents)
	g.POST("/students/:id/parents/:parentId", h.AddParent)
	g.DELETE("/students/:id/parents/:parentId", h.RemoveParent)
}

func (h *StudentHandler) Parents(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	parents, err := h.svc.Parents(id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, parents)
}

func (h *StudentHandler) AddParent(c *gin.Context) {
	studentID, parentID, ok := pathPairIDs(c)
	if !ok {
		return
	}
	out, err := h.svc.AddParent(studentID, parentID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, response.MessageDTO{Message: out.Message})
}

func (h *StudentHandler) RemoveParent(c *gin.Context) {
	studentID, parentID, ok := pathPairIDs(c)
	if !ok {
		return
	}
	out, err := h.svc.RemoveParent(studentID, parentID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, response.MessageDTO{Message: out.Message})
}

func pathPairIDs(c *gin.Context) (int64, int64, bool) {
	studentID, ok := pathID(c)
	if !ok {
		return 0, 0, false
	}
	parentID, err := strconv.ParseInt(c.Param("parentId"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return 0, 0, false
	}
	return studentID, parentID, true
}

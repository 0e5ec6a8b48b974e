package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"school-system-backend/internal/domain"
	"school-system-backend/internal/service"
	"school-system-backend/internal/transport/http/response"
)

// SchoolAdminHandler 学校管理员 CRUD 的控制器：取参 → 调服务 → 套信封
type SchoolAdminHandler struct {
	svc *service.SchoolAdminService
}

func NewSchoolAdminHandler(svc *service.SchoolAdminService) *SchoolAdminHandler {
	return &SchoolAdminHandler{svc: svc}
}

func (h *SchoolAdminHandler) Mount(g *gin.RouterGroup) {
	g.GET("/schooladmins", h.List)
	g.POST("/schooladmins", h.Create)
	g.GET("/schooladmins/:id", h.Get)
	g.PUT("/schooladmins/:id", h.Update)
	g.DELETE("/schooladmins/:id", h.Delete)
}

func (h *SchoolAdminHandler) List(c *gin.Context) {
	var req service.ListSchoolAdminRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c)
		return
	}
	out, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *SchoolAdminHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, dto)
}

func (h *SchoolAdminHandler) Create(c *gin.Context) {
	var req service.CreateSchoolAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	out, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if !out.Success {
		response.Fail(c, out.Errors)
		return
	}
	response.OK(c, response.OnlyIDDTO{ID: out.ID, Name: out.Name})
}

func (h *SchoolAdminHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.CreateSchoolAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if !out.Success {
		response.Fail(c, out.Errors)
		return
	}
	response.OK(c, response.OnlyIDDTO{ID: out.ID, Name: out.Name})
}

func (h *SchoolAdminHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !out.Success {
		response.Fail(c, out.Errors)
		return
	}
	response.OK(c, response.MessageDTO{Message: out.Message})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return 0, false
	}
	return id, true
}

// writeError 结构性缺失翻译成 404，其余一律 500（不外泄内部细节）
func writeError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		response.NotFound(c)
		return
	}
	_ = c.Error(err)
	response.Internal(c)
}

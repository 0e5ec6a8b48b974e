package handler

import (
	"github.com/gin-gonic/gin"

	"school-system-backend/internal/service"
	"school-system-backend/internal/transport/http/middleware"
	"school-system-backend/internal/transport/http/response"
)

// AccountHandler 当前登录用户的 "我的账号" 接口
type AccountHandler struct {
	svc *service.AccountService
}

func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.GetMyInfo)
	g.PUT("/users", h.UpdateMyInfo)
	g.PUT("/users/password", h.ChangeMyPassword)
}

func (h *AccountHandler) GetMyInfo(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	dto, err := h.svc.GetInfo(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, dto)
}

func (h *AccountHandler) UpdateMyInfo(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	out, err := h.svc.UpdateInfo(uid, &req)
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

func (h *AccountHandler) ChangeMyPassword(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	out, err := h.svc.ChangePassword(uid, &req)
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

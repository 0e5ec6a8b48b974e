package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"school-system-backend/internal/domain"
	"school-system-backend/internal/service"
	"school-system-backend/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Mount(g *gin.RouterGroup) {
	g.POST("/auth/login", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	out, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		// 用户不存在和密码不对都按 401 走，不给探测口子
		if errors.Is(err, service.ErrBadCredentials) || domain.IsNotFound(err) {
			response.Unauthorized(c)
			return
		}
		writeError(c, err)
		return
	}
	response.OK(c, out)
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"school-system-backend/internal/core/auth"
	"school-system-backend/internal/domain"
	"school-system-backend/internal/transport/http/handler"
	mdw "school-system-backend/internal/transport/http/middleware"
)

type Handlers struct {
	SchoolAdmin *handler.SchoolAdminHandler
	Account     *handler.AccountHandler
	Auth        *handler.AuthHandler
	Student     *handler.StudentHandler
}

// NewAPIEngine 组装唯一的 HTTP 入口。
// /api/schooladmins 只放系统管理员，/api/users 等放任意已登录用户。
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 公共：登录（单独的每 IP 限速，挡撞库）
	login := api.Group("", mdw.RateLimitPerIP(5, 10))
	h.Auth.Mount(login)

	// 系统管理员专属：学校管理员 CRUD
	adminOnly := api.Group("")
	adminOnly.Use(mdw.AuthJWT(jwter, domain.RoleNameSystem))
	h.SchoolAdmin.Mount(adminOnly)
	h.Student.Mount(adminOnly)

	// 任意已登录用户：我的账号
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	h.Account.Mount(authed)

	return r
}

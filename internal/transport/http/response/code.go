package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-system-backend/internal/errcode"
)

// 出参写法的约定：
//   - 业务成功 → 200 + data
//   - 字段级校验失败 → 200 + errors（失败是预期内的普通返回值）
//   - 结构性缺失（not-found 信号）→ 404 + errors
//   - 鉴权/限流等传输层失败 → 对应状态码 + errors

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Data(data))
}

func Fail(c *gin.Context, errs errcode.Errors) {
	c.JSON(http.StatusOK, Errors(errs))
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, FieldError(errcode.FieldID, errcode.NotFound))
}

func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		FieldError(errcode.FieldAuthorization, errcode.InvalidValue))
}

func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden,
		FieldError(errcode.FieldAuthorization, errcode.InvalidValue))
}

func BadRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		FieldError(errcode.FieldRequest, errcode.InvalidValue))
}

func Overloaded(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable,
		FieldError(errcode.FieldRequest, errcode.InvalidValue))
}

func Internal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		FieldError(errcode.FieldRequest, errcode.InvalidValue))
}

func Timeout(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusGatewayTimeout,
		FieldError(errcode.FieldRequest, errcode.InvalidValue))
}

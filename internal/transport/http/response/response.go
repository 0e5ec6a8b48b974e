package response

import (
	"school-system-backend/internal/errcode"
)

// Body 统一信封：成功只有 data，失败只有 errors（字段 -> 错误码）。
// 两者不会同时出现。
type Body struct {
	Data   any            `json:"data,omitempty"`
	Errors errcode.Errors `json:"errors,omitempty"`
}

func Data(v any) Body {
	if v == nil {
		v = struct{}{}
	}
	return Body{Data: v}
}

func Errors(errs errcode.Errors) Body { return Body{Errors: errs} }

// FieldError 单字段错误的快捷构造（中间件层用）
func FieldError(f errcode.Field, c errcode.Code) Body {
	errs := errcode.New()
	errs.Add(f, c)
	return Body{Errors: errs}
}

type MessageDTO struct {
	Message string `json:"message"`
}

type OnlyIDDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

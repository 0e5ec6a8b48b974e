package service

import (
	"school-system-backend/internal/errcode"
	"school-system-backend/internal/mapper"
)

// CreateSchoolAdminRequest 创建和整体覆盖更新共用同一请求体
type CreateSchoolAdminRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	SchoolID  int64  `json:"schoolId"`
}

// ListSchoolAdminRequest SchoolID 不传时归一化为哨兵 -1（即不过滤）
type ListSchoolAdminRequest struct {
	SchoolID *int64 `form:"schoolId"`
	Page     int    `form:"page,default=1"`
	Size     int    `form:"size,default=20"`
	All      bool   `form:"all"`
	Sort     string `form:"sort"`
	Desc     bool   `form:"desc"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// OnlyIDResult 校验失败作为普通值返回（Success=false + Errors），
// 不走 error 通道；error 只留给结构性缺失等异常情形。
type OnlyIDResult struct {
	Success bool
	ID      int64
	Name    string
	Errors  errcode.Errors
}

func failResult(errs errcode.Errors) OnlyIDResult {
	return OnlyIDResult{Success: false, Errors: errs}
}

type PageInfo struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type ListSchoolAdminResult struct {
	Page  PageInfo                `json:"pagination"`
	Items []mapper.SchoolAdminDTO `json:"items"`
}

type MessageResult struct {
	Success bool
	Message string
	Errors  errcode.Errors
}

package service

import (
	"strings"

	"school-system-backend/internal/domain"
	"school-system-backend/internal/errcode"
)

func hasText(s string) bool { return strings.TrimSpace(s) != "" }

// checkSchoolAdminInput 逐条跑完所有规则并累积结果，不短路。
// 除 email 查重外无副作用。格式/长度校验目前不做（词表里留着码位）。
func checkSchoolAdminInput(users domain.UserRepository, req *CreateSchoolAdminRequest, errs errcode.Errors) error {
	if !hasText(req.FirstName) {
		errs.Add(errcode.FieldFirstName, errcode.MissingValue)
	}
	if !hasText(req.LastName) {
		errs.Add(errcode.FieldLastName, errcode.MissingValue)
	}
	if !hasText(req.Username) {
		errs.Add(errcode.FieldUserName, errcode.MissingValue)
	}
	if !hasText(req.Password) {
		errs.Add(errcode.FieldPassword, errcode.MissingValue)
	}
	if !hasText(req.Email) {
		errs.Add(errcode.FieldEmail, errcode.MissingValue)
	}
	if req.SchoolID < 0 {
		errs.Add(errcode.FieldSchoolID, errcode.MissingValue)
	}

	if hasText(req.Email) {
		// 全系统范围查重（原行为如此，不限定在本校）
		existing, err := users.FindOneByEmail(req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			errs.Add(errcode.FieldEmail, errcode.AlreadyExist)
		}
	}
	return nil
}

package service

import (
	"go.uber.org/zap"

	"school-system-backend/internal/domain"
	"school-system-backend/internal/errcode"
	"school-system-backend/internal/mapper"
	"school-system-backend/pkg/utils"
)

// AccountService 登录用户自己的账号操作（信息/改名/改密）
type AccountService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewAccountService(users domain.UserRepository, log *zap.Logger) *AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{users: users, log: log}
}

func (s *AccountService) GetInfo(userID int64) (mapper.UserInfoDTO, error) {
	u, err := s.users.FindInfoByID(userID)
	if err != nil {
		return mapper.UserInfoDTO{}, err
	}
	if u == nil {
		return mapper.UserInfoDTO{}, domain.NotFoundf("user %d", userID)
	}
	return mapper.UserInfoFromUser(u), nil
}

func (s *AccountService) UpdateInfo(userID int64, req *UpdateUserRequest) (OnlyIDResult, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return OnlyIDResult{}, err
	}
	if u == nil {
		return OnlyIDResult{}, domain.NotFoundf("user %d", userID)
	}

	errs := errcode.New()
	if !hasText(req.FirstName) {
		errs.Add(errcode.FieldFirstName, errcode.MissingValue)
	}
	if !hasText(req.LastName) {
		errs.Add(errcode.FieldLastName, errcode.MissingValue)
	}
	if !errs.Empty() {
		return failResult(errs), nil
	}

	u.FirstName = req.FirstName
	u.LastName = req.LastName
	if err := s.users.Save(u); err != nil {
		return OnlyIDResult{}, err
	}
	return OnlyIDResult{Success: true, ID: u.UserID, Name: u.FullName()}, nil
}

func (s *AccountService) ChangePassword(userID int64, req *ChangePasswordRequest) (MessageResult, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return MessageResult{}, err
	}
	if u == nil {
		return MessageResult{}, domain.NotFoundf("user %d", userID)
	}

	errs := errcode.New()
	if !hasText(req.OldPassword) {
		errs.Add(errcode.FieldOldPassword, errcode.MissingValue)
	}
	if !hasText(req.NewPassword) {
		errs.Add(errcode.FieldNewPassword, errcode.MissingValue)
	}
	if hasText(req.OldPassword) && !utils.CheckPassword(req.OldPassword, u.Password) {
		errs.Add(errcode.FieldOldPassword, errcode.InvalidValue)
	}
	if !errs.Empty() {
		return MessageResult{Success: false, Errors: errs}, nil
	}

	u.Password = utils.HashPassword(req.NewPassword)
	if err := s.users.Save(u); err != nil {
		return MessageResult{}, err
	}
	s.log.Info("password changed", zap.Int64("userId", userID))
	return MessageResult{Success: true, Message: "Change password successfully"}, nil
}

package service

import (
	"errors"

	"go.uber.org/zap"

	"school-system-backend/internal/core/auth"
	"school-system-backend/internal/domain"
	"school-system-backend/pkg/utils"
)

// Principal 认证主体：交给令牌签发方消费。单角色即单权限。
type Principal struct {
	UserID       int64
	Username     string
	PasswordHash string
	Authority    string
	SchoolID     *int64
}

var ErrBadCredentials = errors.New("invalid credentials")

// AuthService 按用户名取认证主体并签发 JWT。
// 与 CRUD 编排拆开，各自一个能力接口，由边界层组合。
type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{users: users, jwter: jwter, log: log}
}

// LoadByUsername 连带 Role/School 取出用户；查无此人走 not-found 信号。
func (s *AuthService) LoadByUsername(username string) (Principal, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return Principal{}, err
	}
	if u == nil {
		return Principal{}, domain.NotFoundf("username %s", username)
	}
	p := Principal{
		UserID:       u.UserID,
		Username:     u.Username,
		PasswordHash: u.Password,
		SchoolID:     u.SchoolID,
	}
	if u.Role != nil {
		p.Authority = u.Role.Name
	}
	return p, nil
}

type LoginResult struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Authority string `json:"authority"`
}

func (s *AuthService) Login(username, password string) (LoginResult, error) {
	p, err := s.LoadByUsername(username)
	if err != nil {
		return LoginResult{}, err
	}
	if !utils.CheckPassword(password, p.PasswordHash) {
		return LoginResult{}, ErrBadCredentials
	}
	token, err := s.jwter.Issue(p.UserID, p.Authority)
	if err != nil {
		return LoginResult{}, err
	}
	s.log.Info("login", zap.Int64("userId", p.UserID), zap.String("authority", p.Authority))
	return LoginResult{Token: token, UserID: p.UserID, Username: p.Username, Authority: p.Authority}, nil
}

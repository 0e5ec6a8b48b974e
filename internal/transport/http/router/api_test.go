package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"school-system-backend/internal/core/auth"
	"school-system-backend/internal/domain"
	"school-system-backend/internal/service"
	"school-system-backend/internal/transport/http/handler"
	"school-system-backend/pkg/utils"
)

func newTestEngine(t *testing.T) (*gin.Engine, *auth.JWTer, *memUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	schools := memSchoolRepo{10: {SchoolID: 10, Name: "Springfield"}}
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "school-test", TTL: time.Minute}

	adminSvc := service.NewSchoolAdminService(users, schools, memRoleRepo{}, nil, 0, nil)
	accountSvc := service.NewAccountService(users, nil)
	authSvc := service.NewAuthService(users, jwter, nil)
	studentSvc := service.NewStudentService(users, memLinkRepo{})

	r := NewAPIEngine(zap.NewNop(), jwter, Handlers{
		SchoolAdmin: handler.NewSchoolAdminHandler(adminSvc),
		Account:     handler.NewAccountHandler(accountSvc),
		Auth:        handler.NewAuthHandler(authSvc),
		Student:     handler.NewStudentHandler(studentSvc),
	})
	return r, jwter, users
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedSystemAdmin(users *memUserRepo) {
	users.put(domain.User{
		FirstName: "Root",
		LastName:  "Admin",
		Username:  "root",
		Email:     "root@example.com",
		Password:  utils.HashPassword("hunter2"),
		RoleID:    domain.RoleSystemAdmin,
		Role:      &domain.Role{RoleID: domain.RoleSystemAdmin, Name: domain.RoleNameSystem},
	})
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/login",
		"", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func TestLoginValidation(t *testing.T) {
	r, _, users := newTestEngine(t)
	seedSystemAdmin(users)

	w := do(r, http.MethodPost, "/api/auth/login", "", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/auth/login", "", `{"username":"root","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/auth/login", "", `{"username":"ghost","password":"x"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code, "unknown user is indistinguishable from bad password")
}

func TestSchoolAdminEndpointsRequireSystemRole(t *testing.T) {
	r, jwter, users := newTestEngine(t)
	seedSystemAdmin(users)

	w := do(r, http.MethodGet, "/api/schooladmins", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	require.Contains(t, body["errors"], "Authorization")

	// 学校管理员角色不放行系统管理接口
	schoolTok, err := jwter.Issue(99, domain.RoleNameSchool)
	require.NoError(t, err)
	w = do(r, http.MethodGet, "/api/schooladmins", schoolTok, "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSchoolAdminCrudOverHTTP(t *testing.T) {
	r, _, users := newTestEngine(t)
	seedSystemAdmin(users)
	tok := login(t, r, "root", "hunter2")

	// 创建
	w := do(r, http.MethodPost, "/api/schooladmins", tok,
		`{"firstName":"Ada","lastName":"Lovelace","username":"ada","password":"pw","email":"ada@example.com","schoolId":10}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	require.Equal(t, "Ada Lovelace", data["name"])
	adminID := strconv.Itoa(int(data["id"].(float64)))

	// 校验失败走 200 + errors 信封
	w = do(r, http.MethodPost, "/api/schooladmins", tok, `{"schoolId":10}`)
	require.Equal(t, http.StatusOK, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	require.Equal(t, "MISSING_VALUE", errs["FirstName"])
	require.Equal(t, "MISSING_VALUE", errs["Email"])

	// 单查：密码被占位符顶掉
	w = do(r, http.MethodGet, "/api/schooladmins/"+adminID, tok, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)["data"].(map[string]any)
	require.Equal(t, "Anonymous", got["password"])

	// 不存在 → 404 + NOT_FOUND 码
	w = do(r, http.MethodGet, "/api/schooladmins/424242", tok, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	errs = decode(t, w)["errors"].(map[string]any)
	require.Equal(t, "NOT_FOUND", errs["Id"])

	// 删除
	w = do(r, http.MethodDelete, "/api/schooladmins/"+adminID, tok, "")
	require.Equal(t, http.StatusOK, w.Code)
	msg := decode(t, w)["data"].(map[string]any)
	require.NotEmpty(t, msg["message"])
}

func TestMyAccountOverHTTP(t *testing.T) {
	r, _, users := newTestEngine(t)
	seedSystemAdmin(users)
	tok := login(t, r, "root", "hunter2")

	w := do(r, http.MethodGet, "/api/users", tok, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	require.Equal(t, "root", data["username"])

	w = do(r, http.MethodPut, "/api/users/password", tok,
		`{"oldPassword":"hunter2","newPassword":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 新口令可以重新登录
	login(t, r, "root", "correct horse")
}

// ---- 内存仓库（只为拉起整条 HTTP 链路） ----

type memUserRepo struct {
	seq   int64
	users map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[int64]*domain.User{}} }

func (m *memUserRepo) put(u domain.User) *domain.User {
	if u.UserID == 0 {
		m.seq++
		u.UserID = m.seq
	} else if u.UserID > m.seq {
		m.seq = u.UserID
	}
	cp := u
	m.users[cp.UserID] = &cp
	return &cp
}

func (m *memUserRepo) Create(u *domain.User) error {
	u.UserID = m.put(*u).UserID
	return nil
}

func (m *memUserRepo) Save(u *domain.User) error { m.put(*u); return nil }

func (m *memUserRepo) Delete(id int64) error { delete(m.users, id); return nil }

func (m *memUserRepo) FindByID(id int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindInfoByID(id int64) (*domain.User, error) { return m.FindByID(id) }

func (m *memUserRepo) FindOneByEmail(email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmailInSchool(email string, schoolID int64) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.SchoolID != nil && *u.SchoolID == schoolID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindSchoolAdminByID(id, roleID int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok && u.RoleID == roleID {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) FindBySchool(schoolID int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if u.SchoolID != nil && *u.SchoolID == schoolID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) FindParentsByStudent(int64) ([]domain.User, error) { return nil, nil }

func (m *memUserRepo) ListSchoolAdmins(f domain.SchoolAdminFilter) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if u.RoleID != domain.RoleSchoolAdmin {
			continue
		}
		if f.SchoolID != domain.SchoolIDAll {
			if u.SchoolID == nil || *u.SchoolID != f.SchoolID {
				continue
			}
		}
		out = append(out, *u)
	}
	return out, nil
}

type memSchoolRepo map[int64]*domain.School

func (m memSchoolRepo) FindByID(id int64) (*domain.School, error) {
	if s, ok := m[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

type memRoleRepo struct{}

func (memRoleRepo) FindByID(id int64) (*domain.Role, error) {
	return &domain.Role{RoleID: id, Name: domain.RoleNameSchool}, nil
}

type memLinkRepo struct{}

func (memLinkRepo) Link(parentID, studentID int64) error   { return nil }
func (memLinkRepo) Unlink(parentID, studentID int64) error { return nil }

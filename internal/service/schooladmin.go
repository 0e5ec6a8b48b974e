package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"school-system-backend/internal/core/cache"
	"school-system-backend/internal/domain"
	"school-system-backend/internal/errcode"
	"school-system-backend/internal/mapper"
	"school-system-backend/pkg/utils"
)

// SchoolAdminService 编排学校管理员的增删改查：
// 校验 → 取关联实体 → 变更 → 落库 → 映射出参。
type SchoolAdminService struct {
	users   domain.UserRepository
	schools domain.SchoolRepository
	roles   domain.RoleRepository
	cache   *cache.Cache // 可为 nil（禁用读缓存）
	ttl     time.Duration
	log     *zap.Logger
}

func NewSchoolAdminService(
	users domain.UserRepository,
	schools domain.SchoolRepository,
	roles domain.RoleRepository,
	c *cache.Cache,
	ttl time.Duration,
	log *zap.Logger,
) *SchoolAdminService {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SchoolAdminService{users: users, schools: schools, roles: roles, cache: c, ttl: ttl, log: log}
}

func adminCacheKey(id int64) string { return fmt.Sprintf("schooladmin:%d", id) }

func (s *SchoolAdminService) Create(ctx context.Context, req *CreateSchoolAdminRequest) (OnlyIDResult, error) {
	errs := errcode.New()
	if err := checkSchoolAdminInput(s.users, req, errs); err != nil {
		return OnlyIDResult{}, err
	}
	if !errs.Empty() {
		return failResult(errs), nil
	}

	school, err := s.schools.FindByID(req.SchoolID)
	if err != nil {
		return OnlyIDResult{}, err
	}
	if school == nil {
		return OnlyIDResult{}, domain.NotFoundf("school %d", req.SchoolID)
	}

	role, err := s.roles.FindByID(domain.RoleSchoolAdmin)
	if err != nil {
		return OnlyIDResult{}, err
	}
	if role == nil {
		return OnlyIDResult{}, domain.NotFoundf("role %d", domain.RoleSchoolAdmin)
	}

	admin := domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  utils.HashPassword(req.Password),
		RoleID:    role.RoleID,
		SchoolID:  &school.SchoolID,
	}
	if err := s.users.Create(&admin); err != nil {
		// 预检和写入之间有并发窗口，唯一索引兜底
		if isDupKey(err) {
			errs.Add(errcode.FieldEmail, errcode.AlreadyExist)
			return failResult(errs), nil
		}
		return OnlyIDResult{}, err
	}

	s.log.Info("school admin created",
		zap.Int64("userId", admin.UserID), zap.Int64("schoolId", school.SchoolID))
	return OnlyIDResult{Success: true, ID: admin.UserID, Name: admin.FullName()}, nil
}

func (s *SchoolAdminService) Update(ctx context.Context, id int64, req *CreateSchoolAdminRequest) (OnlyIDResult, error) {
	admin, err := s.users.FindByID(id)
	if err != nil {
		return OnlyIDResult{}, err
	}
	if admin == nil {
		return OnlyIDResult{}, domain.NotFoundf("user %d", id)
	}

	errs := errcode.New()
	if err := checkSchoolAdminInput(s.users, req, errs); err != nil {
		return OnlyIDResult{}, err
	}
	if !errs.Empty() {
		return failResult(errs), nil
	}

	school, err := s.schools.FindByID(req.SchoolID)
	if err != nil {
		return OnlyIDResult{}, err
	}
	if school == nil {
		return OnlyIDResult{}, domain.NotFoundf("school %d", req.SchoolID)
	}

	// 整体覆盖可变字段，Role 保持不动
	admin.FirstName = req.FirstName
	admin.LastName = req.LastName
	admin.Email = req.Email
	admin.Password = utils.HashPassword(req.Password)
	admin.SchoolID = &school.SchoolID
	if err := s.users.Save(admin); err != nil {
		if isDupKey(err) {
			errs.Add(errcode.FieldEmail, errcode.AlreadyExist)
			return failResult(errs), nil
		}
		return OnlyIDResult{}, err
	}
	s.invalidate(ctx, id)

	return OnlyIDResult{Success: true, ID: admin.UserID, Name: admin.FullName()}, nil
}

func (s *SchoolAdminService) Get(ctx context.Context, id int64) (mapper.SchoolAdminDTO, error) {
	load := func(ctx context.Context) (*mapper.SchoolAdminDTO, error) {
		admin, err := s.users.FindSchoolAdminByID(id, domain.RoleSchoolAdmin)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, domain.NotFoundf("school admin %d", id)
		}
		dto := mapper.SchoolAdminFromUser(admin)
		return &dto, nil
	}

	if s.cache == nil {
		dto, err := load(ctx)
		if err != nil {
			return mapper.SchoolAdminDTO{}, err
		}
		return *dto, nil
	}
	dto, err := cache.GetOrLoadJSON(s.cache, ctx, adminCacheKey(id), s.ttl, load)
	if err != nil {
		return mapper.SchoolAdminDTO{}, err
	}
	return *dto, nil
}

func (s *SchoolAdminService) List(ctx context.Context, req *ListSchoolAdminRequest) (ListSchoolAdminResult, error) {
	schoolID := domain.SchoolIDAll
	if req.SchoolID != nil {
		schoolID = *req.SchoolID
	}

	admins, err := s.users.ListSchoolAdmins(domain.SchoolAdminFilter{
		SchoolID: schoolID,
		Sort:     req.Sort,
		Desc:     req.Desc,
	})
	if err != nil {
		return ListSchoolAdminResult{}, err
	}

	total := int64(len(admins))
	page, size := req.Page, req.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	info := PageInfo{Page: page, Size: size, TotalItems: total}
	if req.All {
		info.Size = math.MaxInt32
		info.TotalPages = 1
	} else {
		info.TotalPages = totalPages(total, size)
	}

	pageItems := admins
	if !req.All {
		pageItems = slicePage(admins, page, size)
	}
	items := make([]mapper.SchoolAdminDTO, 0, len(pageItems))
	for i := range pageItems {
		items = append(items, mapper.SchoolAdminFromUser(&pageItems[i]))
	}
	return ListSchoolAdminResult{Page: info, Items: items}, nil
}

func (s *SchoolAdminService) Delete(ctx context.Context, id int64) (MessageResult, error) {
	admin, err := s.users.FindSchoolAdminByID(id, domain.RoleSchoolAdmin)
	if err != nil {
		return MessageResult{}, err
	}
	if admin == nil {
		return MessageResult{}, domain.NotFoundf("school admin %d", id)
	}
	if err := s.users.Delete(id); err != nil {
		return MessageResult{}, err
	}
	s.invalidate(ctx, id)
	s.log.Info("school admin deleted", zap.Int64("userId", id))
	return MessageResult{Success: true, Message: "Delete school admin successfully"}, nil
}

func (s *SchoolAdminService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, adminCacheKey(id)); err != nil {
		s.log.Warn("cache invalidate", zap.Int64("userId", id), zap.Error(err))
	}
}

func totalPages(totalItems int64, size int) int {
	if totalItems == 0 {
		return 0
	}
	return int((totalItems + int64(size) - 1) / int64(size))
}

func slicePage(admins []domain.User, page, size int) []domain.User {
	start := (page - 1) * size
	if start >= len(admins) {
		return nil
	}
	end := start + size
	if end > len(admins) {
		end = len(admins)
	}
	return admins[start:end]
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}

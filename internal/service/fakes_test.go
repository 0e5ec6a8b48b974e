package service

import (
	"sort"

	"school-system-backend/internal/domain"
)

// 内存版仓库，按 domain 接口契约实现：单条查询未命中返回 (nil, nil)
type fakeUserRepo struct {
	seq     int64
	users   map[int64]*domain.User
	parents map[int64][]int64 // studentID -> parentIDs

	emailLookups int // 统计唯一性预检是否被触发
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, parents: map[int64][]int64{}}
}

func (f *fakeUserRepo) put(u domain.User) *domain.User {
	if u.UserID == 0 {
		f.seq++
		u.UserID = f.seq
	} else if u.UserID > f.seq {
		f.seq = u.UserID
	}
	cp := u
	f.users[cp.UserID] = &cp
	return &cp
}

func (f *fakeUserRepo) Create(u *domain.User) error {
	stored := f.put(*u)
	u.UserID = stored.UserID
	return nil
}

func (f *fakeUserRepo) Save(u *domain.User) error {
	f.put(*u)
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) FindByID(id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindInfoByID(id int64) (*domain.User, error) {
	return f.FindByID(id)
}

func (f *fakeUserRepo) FindOneByEmail(email string) (*domain.User, error) {
	f.emailLookups++
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailInSchool(email string, schoolID int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.SchoolID != nil && *u.SchoolID == schoolID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindSchoolAdminByID(id, roleID int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok || u.RoleID != roleID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindBySchool(schoolID int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		if u.SchoolID != nil && *u.SchoolID == schoolID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindParentsByStudent(studentID int64) ([]domain.User, error) {
	var out []domain.User
	for _, pid := range f.parents[studentID] {
		if u, ok := f.users[pid]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListSchoolAdmins(flt domain.SchoolAdminFilter) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		if u.RoleID != domain.RoleSchoolAdmin {
			continue
		}
		if flt.SchoolID != domain.SchoolIDAll {
			if u.SchoolID == nil || *u.SchoolID != flt.SchoolID {
				continue
			}
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type fakeSchoolRepo struct {
	schools map[int64]*domain.School
}

func newFakeSchoolRepo(schools ...domain.School) *fakeSchoolRepo {
	f := &fakeSchoolRepo{schools: map[int64]*domain.School{}}
	for i := range schools {
		f.schools[schools[i].SchoolID] = &schools[i]
	}
	return f
}

func (f *fakeSchoolRepo) FindByID(id int64) (*domain.School, error) {
	s, ok := f.schools[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

type fakeRoleRepo struct{}

func (fakeRoleRepo) FindByID(id int64) (*domain.Role, error) {
	names := map[int64]string{
		domain.RoleSystemAdmin: domain.RoleNameSystem,
		domain.RoleSchoolAdmin: domain.RoleNameSchool,
		domain.RoleTeacher:     domain.RoleNameTeacher,
		domain.RoleStudent:     domain.RoleNameStudent,
		domain.RoleParent:      domain.RoleNameParent,
	}
	name, ok := names[id]
	if !ok {
		return nil, nil
	}
	return &domain.Role{RoleID: id, Name: name}, nil
}

// fakeLinkRepo 直接写回 fakeUserRepo 的 parents 索引，
// 让 Link 之后的 FindParentsByStudent 能看到结果。
type fakeLinkRepo struct {
	users *fakeUserRepo
}

func (f *fakeLinkRepo) Link(parentID, studentID int64) error {
	f.users.parents[studentID] = append(f.users.parents[studentID], parentID)
	return nil
}

func (f *fakeLinkRepo) Unlink(parentID, studentID int64) error {
	ids := f.users.parents[studentID]
	out := ids[:0]
	for _, id := range ids {
		if id != parentID {
			out = append(out, id)
		}
	}
	f.users.parents[studentID] = out
	return nil
}

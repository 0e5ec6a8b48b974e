package domain

// SchoolIDAll 哨兵值：不按学校过滤（区别于真实 id）
const SchoolIDAll int64 = -1

// SchoolAdminFilter 列表查询的动态条件；SchoolID == SchoolIDAll 时跳过该谓词
type SchoolAdminFilter struct {
	SchoolID int64
	Sort     string // firstName / lastName / createdAt，空则按 user_id
	Desc     bool
}

// 约定：单条查询未命中返回 (nil, nil)，由上层决定是否视为 not-found 信号。
type UserRepository interface {
	Create(u *User) error
	Save(u *User) error
	Delete(id int64) error
	FindByID(id int64) (*User, error)
	// FindByUsername 连同 Role/School 一并取出（认证主体需要完整视图）
	FindByUsername(username string) (*User, error)
	// FindInfoByID 同上，但按 id 取（我的账号信息页用）
	FindInfoByID(id int64) (*User, error)
	FindOneByEmail(email string) (*User, error)
	FindByEmailInSchool(email string, schoolID int64) (*User, error)
	// FindSchoolAdminByID 按固定角色约束取学校管理员，连带 School
	FindSchoolAdminByID(id, roleID int64) (*User, error)
	FindBySchool(schoolID int64) ([]User, error)
	FindParentsByStudent(studentID int64) ([]User, error)
	// ListSchoolAdmins 返回完整过滤结果（不在库里分页，总数取切片长度）
	ListSchoolAdmins(f SchoolAdminFilter) ([]User, error)
}

type SchoolRepository interface {
	FindByID(id int64) (*School, error)
}

type RoleRepository interface {
	FindByID(id int64) (*Role, error)
}

type ParentStudentRepository interface {
	Link(parentID, studentID int64) error
	Unlink(parentID, studentID int64) error
}

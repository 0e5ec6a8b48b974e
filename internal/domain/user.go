package domain

import "time"

// 固定角色表的主键（seed 写入，运行期不变）
const (
	RoleSystemAdmin int64 = 1
	RoleSchoolAdmin int64 = 2
	RoleTeacher     int64 = 3
	RoleStudent     int64 = 4
	RoleParent      int64 = 5
)

// 角色名同时充当授权用的权限名
const (
	RoleNameSystem  = "SYSTEM_ROLE"
	RoleNameSchool  = "SCHOOL_ROLE"
	RoleNameTeacher = "TEACHER_ROLE"
	RoleNameStudent = "STUDENT_ROLE"
	RoleNameParent  = "PARENT_ROLE"
)

type User struct {
	UserID    int64  `gorm:"primaryKey;autoIncrement;column:user_id" json:"userId"`
	FirstName string `gorm:"size:64;not null" json:"firstName"`
	LastName  string `gorm:"size:64;not null" json:"lastName"`
	Username  string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	// Email 在同一学校内唯一；系统级校验仍是全局查重（保持原行为）
	Email    string `gorm:"size:191;index:idx_school_email,unique" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`

	RoleID int64 `gorm:"not null;index" json:"roleId"`
	Role   *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	// SchoolID 为空表示系统级账号（不归属任何学校）
	SchoolID *int64  `gorm:"index:idx_school_email,unique" json:"schoolId,omitempty"`
	School   *School `gorm:"foreignKey:SchoolID" json:"school,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// FullName 展示名 "{FirstName} {LastName}"
func (u *User) FullName() string { return u.FirstName + " " + u.LastName }

// IsSchoolAdmin 学校管理员 = 固定角色 + 必须挂在某个学校下
func (u *User) IsSchoolAdmin() bool {
	return u.RoleID == RoleSchoolAdmin && u.SchoolID != nil
}

type School struct {
	SchoolID int64  `gorm:"primaryKey;autoIncrement;column:school_id" json:"schoolId"`
	Name     string `gorm:"size:191;not null" json:"name"`
}

func (School) TableName() string { return "schools" }

type Role struct {
	RoleID int64  `gorm:"primaryKey;column:role_id" json:"roleId"`
	Name   string `gorm:"size:64;not null" json:"name"`
}

func (Role) TableName() string { return "roles" }

// ParentStudent 家长-学生多对多的显式连接表
type ParentStudent struct {
	ParentStudentID int64 `gorm:"primaryKey;autoIncrement;column:parent_student_id" json:"parentStudentId"`
	ParentID        int64 `gorm:"not null;index" json:"parentId"`
	Parent          *User `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	StudentID       int64 `gorm:"not null;index" json:"studentId"`
	Student         *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (ParentStudent) TableName() string { return "parent_student" }

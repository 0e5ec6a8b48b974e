package service

import (
	"school-system-backend/internal/domain"
	"school-system-backend/internal/mapper"
)

// StudentService 学生-家长关联的查询与维护
type StudentService struct {
	users domain.UserRepository
	links domain.ParentStudentRepository
}

func NewStudentService(users domain.UserRepository, links domain.ParentStudentRepository) *StudentService {
	return &StudentService{users: users, links: links}
}

// Parents 列出某学生关联的全部家长
func (s *StudentService) Parents(studentID int64) ([]mapper.ParentDTO, error) {
	if err := s.mustStudent(studentID); err != nil {
		return nil, err
	}
	parents, err := s.users.FindParentsByStudent(studentID)
	if err != nil {
		return nil, err
	}
	return mapper.ParentsFromUsers(parents), nil
}

// AddParent 建立家长-学生关联。两端都要求角色匹配，角色不对按 not-found 走。
func (s *StudentService) AddParent(studentID, parentID int64) (MessageResult, error) {
	if err := s.mustStudent(studentID); err != nil {
		return MessageResult{}, err
	}
	parent, err := s.users.FindByID(parentID)
	if err != nil {
		return MessageResult{}, err
	}
	if parent == nil || parent.RoleID != domain.RoleParent {
		return MessageResult{}, domain.NotFoundf("parent %d", parentID)
	}
	if err := s.links.Link(parentID, studentID); err != nil {
		return MessageResult{}, err
	}
	return MessageResult{Success: true, Message: "Add parent successfully"}, nil
}

// RemoveParent 解除家长-学生关联
func (s *StudentService) RemoveParent(studentID, parentID int64) (MessageResult, error) {
	if err := s.mustStudent(studentID); err != nil {
		return MessageResult{}, err
	}
	if err := s.links.Unlink(parentID, studentID); err != nil {
		return MessageResult{}, err
	}
	return MessageResult{Success: true, Message: "Remove parent successfully"}, nil
}

func (s *StudentService) mustStudent(studentID int64) error {
	student, err := s.users.FindByID(studentID)
	if err != nil {
		return err
	}
	if student == nil || student.RoleID != domain.RoleStudent {
		return domain.NotFoundf("student %d", studentID)
	}
	return nil
}

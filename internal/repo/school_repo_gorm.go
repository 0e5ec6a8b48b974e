package repo

import (
	"errors"

	"gorm.io/gorm"

	"school-system-backend/internal/domain"
)

type SchoolRepo struct{ db *gorm.DB }

func NewSchoolRepo(db *gorm.DB) *SchoolRepo { return &SchoolRepo{db: db} }

func (r *SchoolRepo) FindByID(id int64) (*domain.School, error) {
	var s domain.School
	err := r.db.First(&s, "school_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type RoleRepo struct{ db *gorm.DB }

func NewRoleRepo(db *gorm.DB) *RoleRepo { return &RoleRepo{db: db} }

func (r *RoleRepo) FindByID(id int64) (*domain.Role, error) {
	var role domain.Role
	err := r.db.First(&role, "role_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

type ParentStudentRepo struct{ db *gorm.DB }

func NewParentStudentRepo(db *gorm.DB) *ParentStudentRepo { return &ParentStudentRepo{db: db} }

func (r *ParentStudentRepo) Link(parentID, studentID int64) error {
	link := domain.ParentStudent{ParentID: parentID, StudentID: studentID}
	return r.db.Create(&link).Error
}

func (r *ParentStudentRepo) Unlink(parentID, studentID int64) error {
	return r.db.
		Where("parent_id = ? AND student_id = ?", parentID, studentID).
		Delete(&domain.ParentStudent{}).Error
}

package repo

import (
	"errors"

	"gorm.io/gorm"

	"school-system-backend/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) Save(u *domain.User) error { return r.db.Save(u).Error }

func (r *UserRepo) Delete(id int64) error {
	return r.db.Where("user_id = ?", id).Delete(&domain.User{}).Error
}

func (r *UserRepo) FindByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("Role").Preload("School").
		First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindInfoByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("Role").Preload("School").
		First(&u, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindOneByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmailInSchool(email string, schoolID int64) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ? AND school_id = ?", email, schoolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindSchoolAdminByID(id, roleID int64) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("School").
		First(&u, "user_id = ? AND role_id = ?", id, roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindBySchool(schoolID int64) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Where("school_id = ?", schoolID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) FindParentsByStudent(studentID int64) ([]domain.User, error) {
	var parents []domain.User
	err := r.db.
		Joins("JOIN parent_student ps ON ps.parent_id = users.user_id").
		Where("ps.student_id = ?", studentID).
		Find(&parents).Error
	if err != nil {
		return nil, err
	}
	return parents, nil
}

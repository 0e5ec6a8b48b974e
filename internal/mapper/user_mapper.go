package mapper

import "school-system-backend/internal/domain"

// PasswordPlaceholder 出口 DTO 不回显真实口令哈希，统一打这个占位
const PasswordPlaceholder = "Anonymous"

type SchoolAdminDTO struct {
	SchoolAdminID int64  `json:"schoolAdminId"`
	Username      string `json:"username"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	SchoolID      int64  `json:"schoolId"`
	SchoolName    string `json:"schoolName"`
}

func SchoolAdminFromUser(u *domain.User) SchoolAdminDTO {
	dto := SchoolAdminDTO{
		SchoolAdminID: u.UserID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Password:      PasswordPlaceholder,
	}
	if u.SchoolID != nil {
		dto.SchoolID = *u.SchoolID
	}
	if u.School != nil {
		dto.SchoolName = u.School.Name
	}
	return dto
}

type UserInfoDTO struct {
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	SchoolID   *int64 `json:"schoolId,omitempty"`
	SchoolName string `json:"schoolName,omitempty"`
}

func UserInfoFromUser(u *domain.User) UserInfoDTO {
	dto := UserInfoDTO{
		UserID:    u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		SchoolID:  u.SchoolID,
	}
	if u.Role != nil {
		dto.Role = u.Role.Name
	}
	if u.School != nil {
		dto.SchoolName = u.School.Name
	}
	return dto
}

type ParentDTO struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func ParentFromUser(u *domain.User) ParentDTO {
	return ParentDTO{
		UserID:    u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func ParentsFromUsers(us []domain.User) []ParentDTO {
	out := make([]ParentDTO, 0, len(us))
	for i := range us {
		out = append(out, ParentFromUser(&us[i]))
	}
	return out
}

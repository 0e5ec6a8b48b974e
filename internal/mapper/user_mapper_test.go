package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"school-system-backend/internal/domain"
)

func TestSchoolAdminFromUserRedactsPassword(t *testing.T) {
	sid := int64(10)
	u := &domain.User{
		UserID:    3,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "$2a$10$realhash",
		RoleID:    domain.RoleSchoolAdmin,
		SchoolID:  &sid,
		School:    &domain.School{SchoolID: sid, Name: "Springfield"},
	}

	dto := SchoolAdminFromUser(u)
	require.Equal(t, PasswordPlaceholder, dto.Password)
	require.Equal(t, int64(3), dto.SchoolAdminID)
	require.Equal(t, int64(10), dto.SchoolID)
	require.Equal(t, "Springfield", dto.SchoolName)
}

func TestUserInfoFromUserHandlesSystemAccounts(t *testing.T) {
	u := &domain.User{
		UserID:   1,
		Username: "root",
		RoleID:   domain.RoleSystemAdmin,
		Role:     &domain.Role{RoleID: domain.RoleSystemAdmin, Name: domain.RoleNameSystem},
	}

	dto := UserInfoFromUser(u)
	require.Equal(t, domain.RoleNameSystem, dto.Role)
	require.Nil(t, dto.SchoolID, "system accounts have no school")
	require.Empty(t, dto.SchoolName)
}

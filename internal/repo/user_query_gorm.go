package repo

import (
	"gorm.io/gorm/clause"

	"school-system-backend/internal/domain"
)

// 列表排序只认白名单里的键，其它一律回落到 user_id
var sortColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"createdAt": "created_at",
}

// ListSchoolAdmins 按过滤条件拼谓词。SchoolID 为哨兵 -1 时整条谓词跳过，
// 不是查 school_id = -1。结果整表取回，分页在展示层切。
func (r *UserRepo) ListSchoolAdmins(f domain.SchoolAdminFilter) ([]domain.User, error) {
	q := r.db.Model(&domain.User{}).
		Preload("School").
		Where("role_id = ?", domain.RoleSchoolAdmin)

	if f.SchoolID != domain.SchoolIDAll {
		q = q.Where("school_id = ?", f.SchoolID)
	}

	col, ok := sortColumns[f.Sort]
	if !ok {
		col = "user_id"
	}
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: f.Desc})

	var admins []domain.User
	if err := q.Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

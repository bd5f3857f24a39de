package rbac

import (
	"context"

	"gorm.io/gorm"
)

// MemberRoleRow binds a user to a role name inside one organisation's
// policy load.
type MemberRoleRow struct {
	UserID   int64  `gorm:"column:user_id"`
	RoleName string `gorm:"column:role_name"`
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetOrganisationMemberRoles(ctx context.Context, organisationID int64) ([]MemberRoleRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetOrganisationMemberRoles loads every role link relevant to one
// organisation. Admin links are global, so they are included regardless of
// the user's organisation mapping.
func (r *repository) GetOrganisationMemberRoles(ctx context.Context, organisationID int64) ([]MemberRoleRow, error) {
	var rows []MemberRoleRow

	err := r.db.WithContext(ctx).
		Table("role_user").
		Select("role_user.user_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = role_user.role_id").
		Joins("LEFT JOIN organisation_user_maps ON organisation_user_maps.user_id = role_user.user_id").
		Where("organisation_user_maps.organisation_setting_id = ? OR roles.name = ?", organisationID, "admin").
		Scan(&rows).Error

	return rows, err
}

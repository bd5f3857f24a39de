package user

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DirectoryFilter narrows directory lookups. The zero value means "every
// employee across tenants, active only".
type DirectoryFilter struct {
	OrganisationID  int64 // 0 = all tenants
	ExcludeUserID   int64 // 0 = nobody excluded
	IncludeInactive bool
}

// DirectoryEntry is the identity projection every directory query returns.
type DirectoryEntry struct {
	ID        int64     `gorm:"column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Employees(ctx context.Context, f DirectoryFilter) ([]DirectoryEntry, error)
	Clients(ctx context.Context) ([]DirectoryEntry, error)
	OrganisationClients(ctx context.Context, organisationID int64) ([]DirectoryEntry, error)
	Admins(ctx context.Context, exceptID int64) ([]DirectoryEntry, error)

	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	RoleByName(ctx context.Context, name string) (*Role, error)
	HasRoleID(ctx context.Context, userID, roleID int64) (bool, error)
	RolesOf(ctx context.Context, userID int64) ([]Role, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const directoryColumns = "users.id, users.name, users.email, users.created_at"

// Employees returns users holding at least one role other than client,
// optionally scoped to one organisation. GROUP BY deduplicates users that
// hold several qualifying roles. No ORDER BY: callers must not depend on
// ordering.
func (r *repository) Employees(ctx context.Context, f DirectoryFilter) ([]DirectoryEntry, error) {
	q := r.db.WithContext(ctx).
		Table("users").
		Select(directoryColumns).
		Joins("JOIN role_user ON role_user.user_id = users.id").
		Joins("JOIN roles ON roles.id = role_user.role_id").
		Where("roles.name <> ?", RoleClient)

	if f.OrganisationID != 0 {
		q = q.
			Joins("JOIN organisation_user_maps ON organisation_user_maps.user_id = users.id").
			Where("organisation_user_maps.organisation_setting_id = ?", f.OrganisationID)
	}
	if f.ExcludeUserID != 0 {
		q = q.Where("users.id <> ?", f.ExcludeUserID)
	}
	if !f.IncludeInactive {
		q = q.Where("users.status = ?", StatusActive)
	}

	var entries []DirectoryEntry
	err := q.Group(directoryColumns).Scan(&entries).Error
	return entries, err
}

func (r *repository) Clients(ctx context.Context) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	err := r.db.WithContext(ctx).
		Table("users").
		Select(directoryColumns).
		Joins("JOIN role_user ON role_user.user_id = users.id").
		Joins("JOIN roles ON roles.id = role_user.role_id").
		Where("roles.name = ?", RoleClient).
		Where("users.status = ?", StatusActive).
		Scan(&entries).Error
	return entries, err
}

func (r *repository) OrganisationClients(ctx context.Context, organisationID int64) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	err := r.db.WithContext(ctx).
		Table("users").
		Select(directoryColumns).
		Joins("JOIN role_user ON role_user.user_id = users.id").
		Joins("JOIN roles ON roles.id = role_user.role_id").
		Joins("JOIN organisation_user_maps ON organisation_user_maps.user_id = users.id").
		Where("roles.name = ?", RoleClient).
		Where("organisation_user_maps.organisation_setting_id = ?", organisationID).
		Where("users.status = ?", StatusActive).
		Scan(&entries).Error
	return entries, err
}

// Admins are global: no organisation filter on purpose.
func (r *repository) Admins(ctx context.Context, exceptID int64) ([]DirectoryEntry, error) {
	q := r.db.WithContext(ctx).
		Table("users").
		Select(directoryColumns).
		Joins("JOIN role_user ON role_user.user_id = users.id").
		Joins("JOIN roles ON roles.id = role_user.role_id").
		Where("roles.name = ?", RoleAdmin)

	if exceptID != 0 {
		q = q.Where("users.id <> ?", exceptID)
	}

	var entries []DirectoryEntry
	err := q.Scan(&entries).Error
	return entries, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) RoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) HasRoleID(ctx context.Context, userID, roleID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RoleUser{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) RolesOf(ctx context.Context, userID int64) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).
		Table("roles").
		Select("roles.id, roles.name, roles.display_name").
		Joins("JOIN role_user ON role_user.role_id = roles.id").
		Where("role_user.user_id = ?", userID).
		Scan(&roles).Error
	return roles, err
}

package user

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	RoleAdmin    = "admin"
	RoleClient   = "client"
	RoleEmployee = "employee"
)

// BootstrapUserID is the seeded super-admin. It can never be deleted.
const BootstrapUserID int64 = 1

// EmployeeRoleID is the seeded base role every employee keeps.
const EmployeeRoleID int64 = 2

type User struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;type:varchar(255)"`
	Email     string `gorm:"column:email;type:varchar(255);uniqueIndex:uq_user_email"`
	Password  string `gorm:"column:password;type:text"`
	Mobile    string `gorm:"column:mobile;type:varchar(30)"`
	Gender    string `gorm:"column:gender;type:varchar(20)"`
	Status    string `gorm:"column:status;type:varchar(20);default:active"`
	Image     string `gorm:"column:image;type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// Role is static reference data (admin, client, employee, ...).
type Role struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;uniqueIndex"`
	DisplayName string `gorm:"column:display_name"`
}

func (Role) TableName() string { return "roles" }

type RoleUser struct {
	UserID int64 `gorm:"column:user_id;uniqueIndex:uq_role_user"`
	RoleID int64 `gorm:"column:role_id;uniqueIndex:uq_role_user"`
}

func (RoleUser) TableName() string { return "role_user" }

// OrganisationUserMap binds a user to exactly one organisation; all tenant
// scoped queries go through this table.
type OrganisationUserMap struct {
	ID                    int64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID                int64 `gorm:"column:user_id;uniqueIndex:uq_org_user"`
	OrganisationSettingID int64 `gorm:"column:organisation_setting_id"`
}

func (OrganisationUserMap) TableName() string { return "organisation_user_maps" }

package employee

import (
	"context"
	"database/sql"
	"time"

	"go-workhub/internal/tenant"
	"go-workhub/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Row is the admin-table projection: identity plus aggregated role names.
type Row struct {
	ID        int64     `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Image     string    `gorm:"column:image"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	RoleNames string    `gorm:"column:role_names"`
}

// ExportRow mirrors the fixed spreadsheet columns.
type ExportRow struct {
	ID         int64     `gorm:"column:id"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	Mobile     string    `gorm:"column:mobile"`
	JobTitle   string    `gorm:"column:job_title"`
	Address    string    `gorm:"column:address"`
	HourlyRate *float64  `gorm:"column:hourly_rate"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateUser(ctx context.Context, u *user.User) error
	FindUserByID(ctx context.Context, id int64) (*user.User, error)
	UpdateUser(ctx context.Context, u *user.User) error
	DeleteUserCascade(ctx context.Context, id int64) error

	MapOrganisation(ctx context.Context, userID, organisationID int64) error
	OrganisationOf(ctx context.Context, userID int64) (int64, error)

	GetOrCreateProfile(ctx context.Context, userID int64) (*EmployeeDetails, error)
	ProfileByUserID(ctx context.Context, userID int64) (*EmployeeDetails, error)
	SaveProfile(ctx context.Context, p *EmployeeDetails) error

	RoleIDByName(ctx context.Context, name string) (int64, error)
	AttachRole(ctx context.Context, userID, roleID int64) error
	ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error

	Rows(ctx context.Context, organisationID int64) ([]Row, error)
	ExportRows(ctx context.Context, organisationID int64) ([]ExportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto an open *sql.Tx so multi-step service
// writes share one transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: gdb}
}

func (r *repository) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindUserByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// DeleteUserCascade removes the user and every dependent link: role links,
// organisation mapping, profile and social identities.
func (r *repository) DeleteUserCascade(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM role_user WHERE user_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM employee_details WHERE user_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM organisation_user_maps WHERE user_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM user_social_networks WHERE user_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&user.User{}, "id = ?", id).Error
}

func (r *repository) MapOrganisation(ctx context.Context, userID, organisationID int64) error {
	return r.db.WithContext(ctx).Create(&user.OrganisationUserMap{
		UserID:                userID,
		OrganisationSettingID: organisationID,
	}).Error
}

// OrganisationOf returns 0 when the user has no organisation mapping.
func (r *repository) OrganisationOf(ctx context.Context, userID int64) (int64, error) {
	var organisationID int64
	err := r.db.WithContext(ctx).
		Table("organisation_user_maps").
		Select("organisation_setting_id").
		Where("user_id = ?", userID).
		Scan(&organisationID).Error
	return organisationID, err
}

// GetOrCreateProfile is an atomic upsert-read keyed by the unique user_id
// index: concurrent first calls cannot create two profiles.
func (r *repository) GetOrCreateProfile(ctx context.Context, userID int64) (*EmployeeDetails, error) {
	var profile EmployeeDetails

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO employee_details (user_id, job_title, created_at, updated_at)
		VALUES (?, '', now(), now())
		ON CONFLICT (user_id) DO UPDATE
		SET updated_at = employee_details.updated_at
		RETURNING id, user_id, job_title, address, hourly_rate, slack_username, joining_date, custom_fields
	`, userID).Scan(&profile).Error

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) ProfileByUserID(ctx context.Context, userID int64) (*EmployeeDetails, error) {
	var profile EmployeeDetails
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) SaveProfile(ctx context.Context, p *EmployeeDetails) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) RoleIDByName(ctx context.Context, name string) (int64, error) {
	var role user.Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error
	if err != nil {
		return 0, err
	}
	return role.ID, nil
}

func (r *repository) AttachRole(ctx context.Context, userID, roleID int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO role_user (user_id, role_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`, userID, roleID).Error
}

// ReplaceRoles swaps the user's role links for exactly the given set.
func (r *repository) ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	db := r.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM role_user WHERE user_id = ?", userID).Error; err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		if err := db.Exec(`
			INSERT INTO role_user (user_id, role_id)
			VALUES (?, ?)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, userID, roleID).Error; err != nil {
			return err
		}
	}
	return nil
}

// Rows feeds the admin employee table: every non-client user mapped to the
// organisation, inactive included, roles aggregated per user.
func (r *repository) Rows(ctx context.Context, organisationID int64) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.name, users.email, users.image, users.status, users.created_at, string_agg(DISTINCT roles.name, ',') AS role_names").
		Joins("JOIN role_user ON role_user.user_id = users.id").
		Joins("JOIN roles ON roles.id = role_user.role_id").
		Scopes(tenant.Scope(organisationID)).
		Where("roles.name <> ?", user.RoleClient).
		Group("users.id, users.name, users.email, users.image, users.status, users.created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ExportRows(ctx context.Context, organisationID int64) ([]ExportRow, error) {
	var rows []ExportRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.name, users.email, users.mobile, employee_details.job_title, employee_details.address, employee_details.hourly_rate, users.created_at").
		Joins("LEFT JOIN employee_details ON employee_details.user_id = users.id").
		Scopes(tenant.Scope(organisationID)).
		Scan(&rows).Error
	return rows, err
}

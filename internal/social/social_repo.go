package social

import (
	"context"
	"database/sql"

	"go-workhub/internal/employee"
	"go-workhub/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=social_repo.go -destination=mock/social_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindLink(ctx context.Context, provider, socialUID string) (*UserSocialNetwork, error)
	CreateLink(ctx context.Context, link *UserSocialNetwork) error

	FindUserByID(ctx context.Context, id int64) (*user.User, error)
	FindUserByEmail(ctx context.Context, email string) (*user.User, error)
	CreateUser(ctx context.Context, u *user.User) error
	UpdateUserImage(ctx context.Context, userID int64, image string) error

	ProfileExists(ctx context.Context, userID int64) (bool, error)
	CreateProfile(ctx context.Context, p *employee.EmployeeDetails) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: gdb}
}

func (r *repository) FindLink(ctx context.Context, provider, socialUID string) (*UserSocialNetwork, error) {
	var link UserSocialNetwork
	err := r.db.WithContext(ctx).
		First(&link, "provider = ? AND social_uid = ?", provider, socialUID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateLink upserts on provider+social_uid so a racing duplicate login
// lands on the same row. The display name and token refresh on every call.
func (r *repository) CreateLink(ctx context.Context, link *UserSocialNetwork) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO user_social_networks (user_id, name, provider, social_uid, token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, now(), now())
		ON CONFLICT (provider, social_uid) DO UPDATE
		SET name = EXCLUDED.name, token = EXCLUDED.token, updated_at = now()
	`, link.UserID, link.Name, link.Provider, link.SocialUID, link.Token).Error
}

func (r *repository) FindUserByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) UpdateUserImage(ctx context.Context, userID int64, image string) error {
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", userID).
		Update("image", image).Error
}

func (r *repository) ProfileExists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.EmployeeDetails{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateProfile(ctx context.Context, p *employee.EmployeeDetails) error {
	return r.db.WithContext(ctx).Create(p).Error
}

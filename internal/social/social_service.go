package social

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-workhub/internal/employee"
	socialerrors "go-workhub/internal/social/errors"
	"go-workhub/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var supportedProviders = map[string]bool{
	"google":   true,
	"facebook": true,
	"linkedin": true,
	"github":   true,
}

const defaultAddress = "address"

// AvatarStore is the slice of the avatar pipeline the linker needs.
type AvatarStore interface {
	SaveFromURL(ctx context.Context, url string) (string, error)
}

//go:generate mockgen -source=social_service.go -destination=mock/social_service_mock.go -package=mock
type Service interface {
	ResolveOrCreate(ctx context.Context, provider string, profile ExternalProfile) (ResolvedUserResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	avatars AvatarStore
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, avatars AvatarStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("social.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("social.service")
	}
	return &service{db: db, repo: repo, avatars: avatars, logger: l}
}

// ResolveOrCreate maps an external identity to a local user: by existing
// link first, then by email, creating the user when neither matches. The
// link is always (re)written so the next login short-circuits.
func (s *service) ResolveOrCreate(
	ctx context.Context,
	provider string,
	profile ExternalProfile,
) (ResolvedUserResponse, error) {
	if !supportedProviders[provider] {
		return ResolvedUserResponse{}, socialerrors.ErrUnsupportedProvider
	}
	if profile.ID == "" {
		return ResolvedUserResponse{}, socialerrors.ErrMissingExternalID
	}

	s.logger.Debug("resolve social identity",
		zap.String("provider", provider),
		zap.String("email", profile.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve social begin tx failed", zap.Error(err))
		return ResolvedUserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var (
		u       *user.User
		created bool
	)

	link, err := qtx.FindLink(ctx, provider, profile.ID)
	switch {
	case err == nil:
		u, err = qtx.FindUserByID(ctx, link.UserID)
		if err != nil {
			return ResolvedUserResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		u, err = qtx.FindUserByEmail(ctx, profile.Email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u, err = s.createUser(ctx, qtx, provider, profile)
			if err != nil {
				return ResolvedUserResponse{}, err
			}
			created = true
		} else if err != nil {
			return ResolvedUserResponse{}, err
		}
	default:
		return ResolvedUserResponse{}, err
	}

	if err := qtx.CreateLink(ctx, &UserSocialNetwork{
		UserID:    u.ID,
		Name:      profile.Name,
		Provider:  provider,
		SocialUID: profile.ID,
		Token:     profile.Token,
	}); err != nil {
		s.logger.Error("persist social link failed", zap.Error(err))
		return ResolvedUserResponse{}, err
	}

	if profile.Headline != "" {
		if err := s.ensureProfile(ctx, qtx, u.ID, profile); err != nil {
			return ResolvedUserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve social commit failed", zap.Error(err))
		return ResolvedUserResponse{}, err
	}

	// Avatar fetch happens after commit: a slow or broken provider CDN must
	// never fail the login. Any resolved user still without an image gets
	// one, not just freshly created accounts.
	if u.Image == "" && profile.Avatar != "" && s.avatars != nil {
		if name, err := s.avatars.SaveFromURL(ctx, profile.Avatar); err != nil {
			s.logger.Warn("social avatar fetch failed",
				zap.String("url", profile.Avatar),
				zap.Error(err),
			)
		} else if err := s.repo.UpdateUserImage(ctx, u.ID, name); err != nil {
			s.logger.Warn("social avatar persist failed", zap.Error(err))
		} else {
			u.Image = name
		}
	}

	s.logger.Info("social identity resolved",
		zap.String("provider", provider),
		zap.Int64("user_id", u.ID),
		zap.Bool("created", created),
	)

	return ResolvedUserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Image:   u.Image,
		Status:  u.Status,
		Created: created,
	}, nil
}

func (s *service) createUser(
	ctx context.Context,
	repo Repository,
	provider string,
	profile ExternalProfile,
) (*user.User, error) {
	// Social accounts get a fixed provider-derived password; it only exists
	// to satisfy the not-null column and never grants password login.
	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(fmt.Sprintf("%s_account", provider)),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Name:     profile.Name,
		Email:    profile.Email,
		Password: string(hashed),
		Gender:   profile.Gender,
		Status:   user.StatusActive,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		s.logger.Error("create social user failed", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (s *service) ensureProfile(
	ctx context.Context,
	repo Repository,
	userID int64,
	profile ExternalProfile,
) error {
	exists, err := repo.ProfileExists(ctx, userID)
	if err != nil || exists {
		return err
	}

	address := profile.Location.Name
	if address == "" {
		address = defaultAddress
	}

	return repo.CreateProfile(ctx, &employee.EmployeeDetails{
		UserID:   userID,
		JobTitle: profile.Headline,
		Address:  address,
	})
}

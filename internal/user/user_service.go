package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const directoryKeyPrefix = "users:directory:"

func DirectoryCacheKey(organisationID int64) string {
	return fmt.Sprintf("%s%d", directoryKeyPrefix, organisationID)
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Employees(ctx context.Context, f DirectoryFilter) ([]DirectoryEntry, error)
	OrganisationDirectory(ctx context.Context, organisationID int64, includeInactive bool) ([]DirectoryEntry, error)
	Clients(ctx context.Context) ([]DirectoryEntry, error)
	OrganisationClients(ctx context.Context, organisationID int64) ([]DirectoryEntry, error)
	Admins(ctx context.Context, exceptID int64) ([]DirectoryEntry, error)

	HasRole(ctx context.Context, userID int64, roleName string) (bool, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	IsClient(ctx context.Context, userID int64) (bool, error)
	IsEmployee(ctx context.Context, userID int64) (bool, error)
	PrimaryRole(ctx context.Context, userID int64) (string, error)

	InvalidateDirectory(ctx context.Context, organisationID int64)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Employees(ctx context.Context, f DirectoryFilter) ([]DirectoryEntry, error) {
	return s.repo.Employees(ctx, f)
}

// OrganisationDirectory is the hot path behind member pickers, so the
// active-only variant is cached per organisation with singleflight guarding
// the rebuild.
func (s *service) OrganisationDirectory(ctx context.Context, organisationID int64, includeInactive bool) ([]DirectoryEntry, error) {
	f := DirectoryFilter{OrganisationID: organisationID, IncludeInactive: includeInactive}

	if includeInactive {
		// admin table view, always fresh
		return s.repo.Employees(ctx, f)
	}

	cacheKey := DirectoryCacheKey(organisationID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var entries []DirectoryEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		entries, err := s.repo.Employees(ctx, f)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(entries); err == nil {
				s.rdb.Set(ctx, cacheKey, data, time.Hour)
			}
		}

		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DirectoryEntry), nil
}

func (s *service) Clients(ctx context.Context) ([]DirectoryEntry, error) {
	return s.repo.Clients(ctx)
}

func (s *service) OrganisationClients(ctx context.Context, organisationID int64) ([]DirectoryEntry, error) {
	return s.repo.OrganisationClients(ctx, organisationID)
}

func (s *service) Admins(ctx context.Context, exceptID int64) ([]DirectoryEntry, error) {
	return s.repo.Admins(ctx, exceptID)
}

// HasRole resolves the role by name first. An unknown role name means no
// user can hold it: false without an error, so misconfigured role data never
// takes a request down.
func (s *service) HasRole(ctx context.Context, userID int64, roleName string) (bool, error) {
	role, err := s.repo.RoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.repo.HasRoleID(ctx, userID, role.ID)
}

func (s *service) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return s.HasRole(ctx, userID, RoleAdmin)
}

func (s *service) IsClient(ctx context.Context, userID int64) (bool, error) {
	return s.HasRole(ctx, userID, RoleClient)
}

func (s *service) IsEmployee(ctx context.Context, userID int64) (bool, error) {
	return s.HasRole(ctx, userID, RoleEmployee)
}

// PrimaryRole picks the label shown for a multi-role user with an explicit
// precedence: admin first, then elevated roles by ascending id, the base
// employee role last. Returns "" when the user holds no roles.
func (s *service) PrimaryRole(ctx context.Context, userID int64) (string, error) {
	roles, err := s.repo.RolesOf(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(roles) == 0 {
		return "", nil
	}

	sort.Slice(roles, func(i, j int) bool {
		return rolePrecedence(roles[i]) < rolePrecedence(roles[j])
	})

	return roles[0].Name, nil
}

func rolePrecedence(r Role) int64 {
	switch r.Name {
	case RoleAdmin:
		return 0
	case RoleEmployee:
		return math.MaxInt64
	default:
		return r.ID
	}
}

// InvalidateDirectory drops the cached directory for one organisation.
// Best-effort: a failed invalidation only means a stale hour-long entry.
func (s *service) InvalidateDirectory(ctx context.Context, organisationID int64) {
	if s.rdb == nil {
		return
	}

	key := DirectoryCacheKey(organisationID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("directory cache invalidation failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

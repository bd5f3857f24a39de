package rbac

import (
	"context"
	"strconv"
	"sync"

	"go-workhub/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// permission is a resource/action pair.
type permission struct {
	Resource string
	Action   string
}

// Static permission matrix: the employee-management surface is admin-only;
// employees and clients get nothing here. Kept in code because roles are
// static reference data in this system.
var rolePermissions = map[string][]permission{
	"admin": {
		{"employee", "read"},
		{"employee", "create"},
		{"employee", "update"},
		{"employee", "delete"},
		{"employee", "export"},
		{"employee", "assign-role"},
		{"project", "assign-admin"},
		{"user", "read"},
	},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadOrganisationPolicy(organisationID int64) error
	InvalidateOrganisationPolicy(organisationID int64) error
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger

	mu     sync.Mutex
	loaded map[int64]bool
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
		loaded:   make(map[int64]bool),
	}
}

func (s *service) LoadOrganisationPolicy(organisationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadOrganisationPolicyUnlocked(organisationID)
}

func (s *service) loadOrganisationPolicyUnlocked(organisationID int64) error {
	dom := strconv.FormatInt(organisationID, 10)

	memberRoles, err := s.repo.GetOrganisationMemberRoles(context.Background(), organisationID)
	if err != nil {
		return err
	}
	s.logger.Debug("rbac load policy",
		zap.Int64("organisation_id", organisationID),
		zap.Int("member_roles", len(memberRoles)),
	)

	for _, mr := range memberRoles {
		if _, err := s.enforcer.AddGroupingPolicy(
			strconv.FormatInt(mr.UserID, 10),
			mr.RoleName,
			dom,
		); err != nil {
			return err
		}
	}

	for roleName, perms := range rolePermissions {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(roleName, dom, p.Resource, p.Action); err != nil {
				return err
			}
		}
	}

	s.loaded[organisationID] = true
	return nil
}

// InvalidateOrganisationPolicy drops the organisation's cached grouping
// policies so the next Enforce reloads role links from the database. Called
// after role assignments commit; without it a promotion would only take
// effect on restart.
func (s *service) InvalidateOrganisationPolicy(organisationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dom := strconv.FormatInt(organisationID, 10)
	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(2, dom); err != nil {
		return err
	}
	delete(s.loaded, organisationID)

	s.logger.Debug("rbac policy invalidated", zap.Int64("organisation_id", organisationID))
	return nil
}

// Enforce lazily loads the organisation's policy on first use, then asks
// casbin whether the user may perform resource:action in that organisation.
func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	if !s.loaded[req.OrganisationID] {
		if err := s.loadOrganisationPolicyUnlocked(req.OrganisationID); err != nil {
			s.mu.Unlock()
			return false, err
		}
	}
	s.mu.Unlock()

	return s.enforcer.Enforce(
		strconv.FormatInt(req.UserID, 10),
		strconv.FormatInt(req.OrganisationID, 10),
		req.Resource,
		req.Action,
	)
}

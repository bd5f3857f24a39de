package rbac_test

import (
	"testing"

	"go-workhub/internal/domain"
	"go-workhub/internal/rbac"
	"go-workhub/internal/rbac/infra"
	rbacMock "go-workhub/internal/rbac/mock"
	"go-workhub/internal/user"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service rbac.Service
	repo    *rbacMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	enforcer, err := infra.NewEnforcer("infra/model.conf")
	assert.NoError(t, err)

	repo := rbacMock.NewMockRepository(ctrl)
	svc := rbac.NewService(repo, enforcer)

	return &serviceDeps{service: svc, repo: repo}
}

func TestRBACService_Enforce(t *testing.T) {
	const orgID int64 = 7

	t.Run("admin passes, employee is denied", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			GetOrganisationMemberRoles(gomock.Any(), orgID).
			Return([]rbac.MemberRoleRow{
				{UserID: 10, RoleName: user.RoleAdmin},
				{UserID: 11, RoleName: user.RoleEmployee},
			}, nil)

		ok, err := deps.service.Enforce(domain.EnforceRequest{
			UserID: 10, OrganisationID: orgID, Resource: "employee", Action: "delete",
		})
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = deps.service.Enforce(domain.EnforceRequest{
			UserID: 11, OrganisationID: orgID, Resource: "employee", Action: "delete",
		})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("policy loads once per organisation", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			GetOrganisationMemberRoles(gomock.Any(), orgID).
			Return([]rbac.MemberRoleRow{{UserID: 10, RoleName: user.RoleAdmin}}, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			_, err := deps.service.Enforce(domain.EnforceRequest{
				UserID: 10, OrganisationID: orgID, Resource: "user", Action: "read",
			})
			assert.NoError(t, err)
		}
	})

	t.Run("invalidation picks up a promotion without restart", func(t *testing.T) {
		deps := setupServiceTest(t)

		// First load: user 11 only holds the employee role.
		deps.repo.EXPECT().
			GetOrganisationMemberRoles(gomock.Any(), orgID).
			Return([]rbac.MemberRoleRow{{UserID: 11, RoleName: user.RoleEmployee}}, nil)

		ok, err := deps.service.Enforce(domain.EnforceRequest{
			UserID: 11, OrganisationID: orgID, Resource: "employee", Action: "update",
		})
		assert.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, deps.service.InvalidateOrganisationPolicy(orgID))

		// Reload after the role change sees the admin link.
		deps.repo.EXPECT().
			GetOrganisationMemberRoles(gomock.Any(), orgID).
			Return([]rbac.MemberRoleRow{
				{UserID: 11, RoleName: user.RoleEmployee},
				{UserID: 11, RoleName: user.RoleAdmin},
			}, nil)

		ok, err = deps.service.Enforce(domain.EnforceRequest{
			UserID: 11, OrganisationID: orgID, Resource: "employee", Action: "update",
		})
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("invalidation is scoped to one organisation", func(t *testing.T) {
		deps := setupServiceTest(t)
		const otherOrg int64 = 8

		deps.repo.EXPECT().
			GetOrganisationMemberRoles(gomock.Any(), otherOrg).
			Return([]rbac.MemberRoleRow{{UserID: 20, RoleName: user.RoleAdmin}}, nil).
			Times(1)

		ok, err := deps.service.Enforce(domain.EnforceRequest{
			UserID: 20, OrganisationID: otherOrg, Resource: "employee", Action: "read",
		})
		assert.NoError(t, err)
		assert.True(t, ok)

		assert.NoError(t, deps.service.InvalidateOrganisationPolicy(orgID))

		// The untouched organisation keeps its cached load.
		ok, err = deps.service.Enforce(domain.EnforceRequest{
			UserID: 20, OrganisationID: otherOrg, Resource: "employee", Action: "read",
		})
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

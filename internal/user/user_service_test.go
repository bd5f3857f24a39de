package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workhub/internal/user"
	userMock "go-workhub/internal/user/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   user.Service
	repo      *userMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := userMock.NewMockRepository(ctrl)

	svc := user.NewService(repo, rdb)

	return &serviceDeps{service: svc, repo: repo, redisMock: redisMock}
}

func TestUserService_OrganisationDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from repo and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		const orgID int64 = 7
		cacheKey := user.DirectoryCacheKey(orgID)

		entries := []user.DirectoryEntry{{ID: 1, Name: "Alice", Email: "alice@example.com"}}

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			Employees(gomock.Any(), user.DirectoryFilter{OrganisationID: orgID}).
			Return(entries, nil)
		data, _ := json.Marshal(entries)
		deps.redisMock.ExpectSet(cacheKey, data, time.Hour).SetVal("OK")

		got, err := deps.service.OrganisationDirectory(ctx, orgID, false)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Alice", got[0].Name)
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		deps := setupServiceTest(t)
		const orgID int64 = 8
		cacheKey := user.DirectoryCacheKey(orgID)

		entries := []user.DirectoryEntry{{ID: 2, Name: "Bob", Email: "bob@example.com"}}
		data, _ := json.Marshal(entries)
		deps.redisMock.ExpectGet(cacheKey).SetVal(string(data))

		got, err := deps.service.OrganisationDirectory(ctx, orgID, false)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Bob", got[0].Name)
	})

	t.Run("include inactive bypasses cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		const orgID int64 = 9

		deps.repo.EXPECT().
			Employees(gomock.Any(), user.DirectoryFilter{OrganisationID: orgID, IncludeInactive: true}).
			Return([]user.DirectoryEntry{{ID: 3}, {ID: 4}}, nil)

		got, err := deps.service.OrganisationDirectory(ctx, orgID, true)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		const orgID int64 = 10
		cacheKey := user.DirectoryCacheKey(orgID)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			Employees(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := deps.service.OrganisationDirectory(ctx, orgID, false)

		assert.Error(t, err)
	})
}

func TestUserService_HasRole(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown role name is false without error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			RoleByName(ctx, "superuser").
			Return(nil, gorm.ErrRecordNotFound)

		ok, err := deps.service.HasRole(ctx, 10, "superuser")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("held role", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			RoleByName(ctx, user.RoleAdmin).
			Return(&user.Role{ID: 1, Name: user.RoleAdmin}, nil)
		deps.repo.EXPECT().HasRoleID(ctx, int64(10), int64(1)).Return(true, nil)

		ok, err := deps.service.IsAdmin(ctx, 10)

		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestUserService_PrimaryRole(t *testing.T) {
	ctx := context.Background()

	t.Run("admin wins over everything", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().RolesOf(ctx, int64(10)).Return([]user.Role{
			{ID: 2, Name: user.RoleEmployee},
			{ID: 5, Name: "manager"},
			{ID: 1, Name: user.RoleAdmin},
		}, nil)

		role, err := deps.service.PrimaryRole(ctx, 10)

		assert.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("employee role is always last", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().RolesOf(ctx, int64(11)).Return([]user.Role{
			{ID: 2, Name: user.RoleEmployee},
			{ID: 9, Name: "manager"},
		}, nil)

		role, err := deps.service.PrimaryRole(ctx, 11)

		assert.NoError(t, err)
		assert.Equal(t, "manager", role)
	})

	t.Run("no roles means empty label", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().RolesOf(ctx, int64(12)).Return(nil, nil)

		role, err := deps.service.PrimaryRole(ctx, 12)

		assert.NoError(t, err)
		assert.Empty(t, role)
	})
}

package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-workhub/internal/employee"
	employeeerrors "go-workhub/internal/employee/errors"
	"go-workhub/internal/events"
	"go-workhub/internal/shared/contextutil"
	"go-workhub/internal/user"

	employeeMock "go-workhub/internal/employee/mock"
	"go-workhub/internal/messaging/kafka"
	kafkaMock "go-workhub/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeActivity struct {
	tasks   int64
	minutes int64
	err     error
}

func (f *fakeActivity) CompletedTaskCount(ctx context.Context, userID int64) (int64, error) {
	return f.tasks, f.err
}

func (f *fakeActivity) MinutesLogged(ctx context.Context, userID int64) (int64, error) {
	return f.minutes, f.err
}

type fakeDirectory struct {
	invalidated []int64
}

func (f *fakeDirectory) InvalidateDirectory(ctx context.Context, organisationID int64) {
	f.invalidated = append(f.invalidated, organisationID)
}

type fakePolicies struct {
	invalidated []int64
	err         error
}

func (f *fakePolicies) InvalidateOrganisationPolicy(organisationID int64) error {
	f.invalidated = append(f.invalidated, organisationID)
	return f.err
}

type fakeAvatars struct {
	saved   string
	saveErr error
}

func (f *fakeAvatars) SaveFromURL(ctx context.Context, url string) (string, error) {
	return f.saved, f.saveErr
}

func (f *fakeAvatars) Replace(ctx context.Context, previous, url string) (string, error) {
	return f.saved, f.saveErr
}

func (f *fakeAvatars) Delete(ctx context.Context, name string) error { return nil }

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	activity  *fakeActivity
	directory *fakeDirectory
	policies  *fakePolicies
	avatars   *fakeAvatars
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	activity := &fakeActivity{}
	directory := &fakeDirectory{}
	policies := &fakePolicies{}
	avatars := &fakeAvatars{}

	svc := employee.NewService(db, repo, outboxRepo, avatars, activity, directory, policies)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		activity:  activity,
		directory: directory,
		policies:  policies,
		avatars:   avatars,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	const orgID int64 = 7

	validReq := func() employee.CreateEmployeeRequest {
		return employee.CreateEmployeeRequest{
			Name:        "Jane Smith",
			Email:       "jane@example.com",
			Password:    "supersecret",
			JobTitle:    "Engineer",
			JoiningDate: "2026-02-01",
			HourlyRate:  "42.5",
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := context.Background()
		req := validReq()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.repo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, req.Name, u.Name)
				assert.Equal(t, req.Email, u.Email)
				assert.Equal(t, user.StatusActive, u.Status)
				assert.NotEqual(t, req.Password, u.Password)
				u.ID = 10
				return nil
			})

		deps.repo.EXPECT().MapOrganisation(ctx, int64(10), orgID).Return(nil)

		deps.repo.EXPECT().
			SaveProfile(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *employee.EmployeeDetails) error {
				assert.Equal(t, int64(10), p.UserID)
				assert.Equal(t, "Engineer", p.JobTitle)
				assert.NotNil(t, p.HourlyRate)
				assert.Equal(t, 42.5, *p.HourlyRate)
				assert.NotNil(t, p.JoiningDate)
				return nil
			})

		deps.repo.EXPECT().AttachRole(ctx, int64(10), user.EmployeeRoleID).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, orgID, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, []int64{orgID}, deps.directory.invalidated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox event carries request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-42"
		ctx := contextutil.WithRequestID(context.Background(), rid)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				u.ID = 11
				return nil
			})
		deps.repo.EXPECT().MapOrganisation(gomock.Any(), int64(11), orgID).Return(nil)
		deps.repo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().AttachRole(gomock.Any(), int64(11), user.EmployeeRoleID).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, rid, event.RequestID)
				assert.Equal(t, events.UserInvitedTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)

				var payload events.UserInvitedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, rid, payload.RequestID)
				assert.Equal(t, int64(11), payload.UserID)
				return nil
			})

		_, err := deps.service.Create(ctx, orgID, validReq())
		assert.NoError(t, err)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.JoiningDate = "01-02-2026"

		_, err := deps.service.Create(context.Background(), orgID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})

	t.Run("invalid hourly rate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.HourlyRate = "forty"

		_, err := deps.service.Create(context.Background(), orgID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHourlyRate)
	})

	t.Run("duplicate email -> conflict, rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"})

		_, err := deps.service.Create(ctx, orgID, validReq())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
		assert.Empty(t, deps.directory.invalidated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("avatar failure does not block create", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.avatars.saveErr = errors.New("cdn unreachable")

		ctx := context.Background()
		req := validReq()
		req.AvatarURL = "https://cdn.example.com/a.jpg"

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Empty(t, u.Image)
				u.ID = 12
				return nil
			})
		deps.repo.EXPECT().MapOrganisation(ctx, int64(12), orgID).Return(nil)
		deps.repo.EXPECT().SaveProfile(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().AttachRole(ctx, int64(12), user.EmployeeRoleID).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, orgID, req)

		assert.NoError(t, err)
	})
}

func TestEmployeeService_Show(t *testing.T) {
	const orgID int64 = 7
	ctx := context.Background()

	t.Run("success with work stats", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.activity.tasks = 3
		deps.activity.minutes = 125

		deps.repo.EXPECT().
			FindUserByID(ctx, int64(10)).
			Return(&user.User{ID: 10, Name: "Jane", Status: user.StatusActive}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().
			GetOrCreateProfile(ctx, int64(10)).
			Return(&employee.EmployeeDetails{ID: 1, UserID: 10, JobTitle: "Engineer"}, nil)

		resp, err := deps.service.Show(ctx, orgID, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.TasksCompleted)
		assert.Equal(t, "2 hrs 5 mins", resp.HoursLogged)
		assert.Equal(t, "Engineer", resp.Employee.Profile.JobTitle)
	})

	t.Run("wrong organisation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindUserByID(ctx, int64(10)).
			Return(&user.User{ID: 10}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(int64(99), nil)

		_, err := deps.service.Show(ctx, orgID, 10)

		assert.ErrorIs(t, err, employeeerrors.ErrWrongOrganisation)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindUserByID(ctx, int64(404)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Show(ctx, orgID, 404)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	const orgID int64 = 7
	ctx := context.Background()

	t.Run("bootstrap user protected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, orgID, user.BootstrapUserID)

		assert.ErrorIs(t, err, employeeerrors.ErrBootstrapUserProtected)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindUserByID(ctx, int64(10)).Return(&user.User{ID: 10}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().DeleteUserCascade(ctx, int64(10)).Return(nil)

		err := deps.service.Delete(ctx, orgID, 10)

		assert.NoError(t, err)
		assert.Equal(t, []int64{orgID}, deps.directory.invalidated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("db error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindUserByID(ctx, int64(10)).Return(&user.User{ID: 10}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().DeleteUserCascade(ctx, int64(10)).Return(errors.New("db error"))

		err := deps.service.Delete(ctx, orgID, 10)

		assert.Error(t, err)
		assert.Empty(t, deps.directory.invalidated)
	})
}

func TestEmployeeService_AssignRole(t *testing.T) {
	const orgID int64 = 7
	ctx := context.Background()

	t.Run("keeps base employee role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindUserByID(ctx, int64(10)).Return(&user.User{ID: 10}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().RoleIDByName(ctx, user.RoleEmployee).Return(int64(2), nil)
		deps.repo.EXPECT().ReplaceRoles(ctx, int64(10), []int64{2, 5}).Return(nil)

		err := deps.service.AssignRole(ctx, orgID, employee.AssignRoleRequest{UserID: 10, RoleID: 5})

		assert.NoError(t, err)
		assert.Equal(t, []int64{orgID}, deps.directory.invalidated)
		assert.Equal(t, []int64{orgID}, deps.policies.invalidated)
	})

	t.Run("assigning the employee role itself is not duplicated", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindUserByID(ctx, int64(10)).Return(&user.User{ID: 10}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().RoleIDByName(ctx, user.RoleEmployee).Return(int64(2), nil)
		deps.repo.EXPECT().ReplaceRoles(ctx, int64(10), []int64{2}).Return(nil)

		err := deps.service.AssignRole(ctx, orgID, employee.AssignRoleRequest{UserID: 10, RoleID: 2})

		assert.NoError(t, err)
	})

	t.Run("role table missing employee role", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindUserByID(ctx, int64(10)).Return(&user.User{ID: 10}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().RoleIDByName(ctx, user.RoleEmployee).Return(int64(0), gorm.ErrRecordNotFound)

		err := deps.service.AssignRole(ctx, orgID, employee.AssignRoleRequest{UserID: 10, RoleID: 5})

		assert.ErrorIs(t, err, employeeerrors.ErrRoleNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	const orgID int64 = 7
	ctx := context.Background()

	t.Run("merges only supplied profile fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existingRate := 30.0
		address := "1 Main St"

		deps.sqlMock.ExpectBegin()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindUserByID(ctx, int64(10)).
			Return(&user.User{ID: 10, Name: "Old", Email: "old@example.com", Password: "hash", Status: user.StatusActive}, nil)
		deps.repo.EXPECT().OrganisationOf(ctx, int64(10)).Return(orgID, nil)
		deps.repo.EXPECT().
			ProfileByUserID(ctx, int64(10)).
			Return(&employee.EmployeeDetails{ID: 1, UserID: 10, JobTitle: "Old Title", HourlyRate: &existingRate}, nil)
		deps.repo.EXPECT().
			UpdateUser(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, "New Name", u.Name)
				assert.Equal(t, "hash", u.Password)
				return nil
			})
		deps.repo.EXPECT().
			SaveProfile(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *employee.EmployeeDetails) error {
				assert.Equal(t, "New Title", p.JobTitle)
				assert.Equal(t, address, p.Address)
				assert.Equal(t, 30.0, *p.HourlyRate)
				return nil
			})

		deps.sqlMock.ExpectCommit()

		req := employee.UpdateEmployeeRequest{
			Name:     "New Name",
			Email:    "old@example.com",
			JobTitle: "New Title",
			Address:  &address,
		}

		resp, err := deps.service.Update(ctx, orgID, 10, req)

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := "2026/02/01"
		req := employee.UpdateEmployeeRequest{
			Name:        "N",
			Email:       "n@example.com",
			JobTitle:    "T",
			JoiningDate: &bad,
		}

		_, err := deps.service.Update(ctx, orgID, 10, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})
}

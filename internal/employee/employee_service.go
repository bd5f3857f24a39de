package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	employeeerrors "go-workhub/internal/employee/errors"
	"go-workhub/internal/events"
	"go-workhub/internal/messaging/kafka"
	"go-workhub/internal/project"
	"go-workhub/internal/shared/contextutil"
	"go-workhub/internal/shared/spreadsheet"
	"go-workhub/internal/user"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const joiningDateLayout = "2006-01-02"

// exportHeaders is the fixed spreadsheet header row.
var exportHeaders = []string{"ID", "Name", "Email", "Mobile", "Job Title", "Address", "Hourly Rate", "Created at"}

// AvatarService is the slice of the avatar pipeline this service needs.
type AvatarService interface {
	SaveFromURL(ctx context.Context, url string) (string, error)
	Replace(ctx context.Context, previous, url string) (string, error)
	Delete(ctx context.Context, name string) error
}

// ActivitySource aggregates the per-user work stats shown on the employee
// detail page. Implemented by the project repository.
type ActivitySource interface {
	CompletedTaskCount(ctx context.Context, userID int64) (int64, error)
	MinutesLogged(ctx context.Context, userID int64) (int64, error)
}

// DirectoryCache invalidates the tenant directory after membership changes.
type DirectoryCache interface {
	InvalidateDirectory(ctx context.Context, organisationID int64)
}

// PolicyCache drops cached authorisation policy so role changes take effect
// without a restart. Implemented by the rbac service.
type PolicyCache interface {
	InvalidateOrganisationPolicy(organisationID int64) error
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organisationID int64, req CreateEmployeeRequest) (EmployeeResponse, error)
	Rows(ctx context.Context, organisationID int64) ([]RowResponse, error)
	Show(ctx context.Context, organisationID, id int64) (ShowResponse, error)
	GetOrCreateProfile(ctx context.Context, userID int64) (ProfileResponse, error)
	Update(ctx context.Context, organisationID, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, organisationID, id int64) error
	AssignRole(ctx context.Context, organisationID int64, req AssignRoleRequest) error
	Export(ctx context.Context, organisationID int64) (*excelize.File, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	avatars   AvatarService
	activity  ActivitySource
	directory DirectoryCache
	policies  PolicyCache
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	avatars AvatarService,
	activity ActivitySource,
	directory DirectoryCache,
	policies PolicyCache,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outbox,
		avatars:   avatars,
		activity:  activity,
		directory: directory,
		policies:  policies,
		logger:    l,
	}
}

func (s *service) Create(
	ctx context.Context,
	organisationID int64,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Int64("organisation_id", organisationID),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse(joiningDateLayout, req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	hourlyRate, err := parseHourlyRate(req.HourlyRate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	// Avatar is cosmetic: a failed fetch must never block the create.
	image := ""
	if req.AvatarURL != "" && s.avatars != nil {
		if name, err := s.avatars.SaveFromURL(ctx, req.AvatarURL); err != nil {
			s.logger.Warn("create employee avatar fetch failed",
				zap.String("url", req.AvatarURL),
				zap.Error(err),
			)
		} else {
			image = name
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Mobile:   req.Mobile,
		Gender:   req.Gender,
		Status:   user.StatusActive,
		Image:    image,
	}
	if err := qtx.CreateUser(ctx, u); err != nil {
		s.logger.Error("create employee persist user failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := qtx.MapOrganisation(ctx, u.ID, organisationID); err != nil {
		s.logger.Error("create employee map organisation failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	profile := &EmployeeDetails{
		UserID:        u.ID,
		JobTitle:      req.JobTitle,
		Address:       req.Address,
		HourlyRate:    hourlyRate,
		SlackUsername: req.SlackUsername,
		JoiningDate:   &joiningDate,
	}
	if len(req.CustomFields) > 0 {
		data, err := json.Marshal(req.CustomFields)
		if err != nil {
			return EmployeeResponse{}, err
		}
		profile.CustomFields = data
	}
	if err := qtx.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("create employee persist profile failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Every employee gets the base role, regardless of any role picked later.
	if err := qtx.AttachRole(ctx, u.ID, user.EmployeeRoleID); err != nil {
		s.logger.Error("create employee attach role failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.UserInvitedEvent{
			EventType:      "user_invited",
			RequestID:      rid,
			UserID:         u.ID,
			OrganisationID: organisationID,
			Email:          u.Email,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal invite event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "user",
			AggregateID:   strconv.FormatInt(u.ID, 10),
			EventType:     event.EventType,
			Topic:         events.UserInvitedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.Int64("user_id", u.ID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.directory != nil {
		s.directory.InvalidateDirectory(ctx, organisationID)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("user_id", u.ID),
	)

	return mapToResponse(u, profile), nil
}

func (s *service) Rows(ctx context.Context, organisationID int64) ([]RowResponse, error) {
	s.logger.Debug("employee rows requested", zap.Int64("organisation_id", organisationID))

	rows, err := s.repo.Rows(ctx, organisationID)
	if err != nil {
		s.logger.Error("employee rows failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToRowResponses(rows), nil
}

func (s *service) Show(ctx context.Context, organisationID, id int64) (ShowResponse, error) {
	s.logger.Debug("show employee requested",
		zap.Int64("organisation_id", organisationID),
		zap.Int64("user_id", id),
	)

	u, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return ShowResponse{}, mapRepositoryError(err)
	}

	if err := s.checkOrganisation(ctx, s.repo, id, organisationID); err != nil {
		return ShowResponse{}, err
	}

	// Upsert-read: viewing an employee materialises a blank profile if none
	// exists yet.
	profile, err := s.repo.GetOrCreateProfile(ctx, id)
	if err != nil {
		return ShowResponse{}, mapRepositoryError(err)
	}

	tasksCompleted, err := s.activity.CompletedTaskCount(ctx, id)
	if err != nil {
		return ShowResponse{}, err
	}
	minutes, err := s.activity.MinutesLogged(ctx, id)
	if err != nil {
		return ShowResponse{}, err
	}

	return ShowResponse{
		Employee:       mapToResponse(u, profile),
		TasksCompleted: tasksCompleted,
		HoursLogged:    project.FormatMinutes(minutes),
	}, nil
}

func (s *service) GetOrCreateProfile(ctx context.Context, userID int64) (ProfileResponse, error) {
	profile, err := s.repo.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return mapProfile(profile), nil
}

func (s *service) Update(
	ctx context.Context,
	organisationID, id int64,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.Int64("organisation_id", organisationID),
		zap.Int64("user_id", id),
	)

	var joiningDate *time.Time
	if req.JoiningDate != nil {
		parsed, err := time.Parse(joiningDateLayout, *req.JoiningDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
		}
		joiningDate = &parsed
	}

	var hourlyRate *float64
	if req.HourlyRate != nil {
		parsed, err := parseHourlyRate(*req.HourlyRate)
		if err != nil {
			return EmployeeResponse{}, err
		}
		hourlyRate = parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindUserByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.checkOrganisation(ctx, qtx, id, organisationID); err != nil {
		return EmployeeResponse{}, err
	}

	u.Name = req.Name
	u.Email = req.Email
	if req.Mobile != nil {
		u.Mobile = *req.Mobile
	}
	if req.Gender != nil {
		u.Gender = *req.Gender
	}
	if req.Status != nil {
		u.Status = *req.Status
	}

	// Password only changes when a new one is supplied.
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return EmployeeResponse{}, err
		}
		u.Password = string(hashed)
	}

	if req.AvatarURL != "" && s.avatars != nil {
		if name, err := s.avatars.Replace(ctx, u.Image, req.AvatarURL); err != nil {
			s.logger.Warn("update employee avatar replace failed",
				zap.String("url", req.AvatarURL),
				zap.Error(err),
			)
		} else {
			u.Image = name
		}
	}

	profile, err := qtx.ProfileByUserID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, mapRepositoryError(err)
		}
		profile = &EmployeeDetails{UserID: id}
	}

	// Merge: only supplied profile fields are written, dates normalised.
	profile.JobTitle = req.JobTitle
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if hourlyRate != nil {
		profile.HourlyRate = hourlyRate
	}
	if req.SlackUsername != nil {
		profile.SlackUsername = *req.SlackUsername
	}
	if joiningDate != nil {
		profile.JoiningDate = joiningDate
	}
	if len(req.CustomFields) > 0 {
		merged, err := mergeCustomFields(profile.CustomFields, req.CustomFields)
		if err != nil {
			return EmployeeResponse{}, err
		}
		profile.CustomFields = merged
	}

	if err := qtx.UpdateUser(ctx, u); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.SaveProfile(ctx, profile); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.directory != nil {
		s.directory.InvalidateDirectory(ctx, organisationID)
	}

	s.logger.Info("update employee success", zap.Int64("user_id", id))

	return mapToResponse(u, profile), nil
}

func (s *service) Delete(ctx context.Context, organisationID, id int64) error {
	s.logger.Debug("delete employee requested",
		zap.Int64("organisation_id", organisationID),
		zap.Int64("user_id", id),
	)

	if id == user.BootstrapUserID {
		return employeeerrors.ErrBootstrapUserProtected
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindUserByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.checkOrganisation(ctx, qtx, id, organisationID); err != nil {
		return err
	}

	if err := qtx.DeleteUserCascade(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	if s.directory != nil {
		s.directory.InvalidateDirectory(ctx, organisationID)
	}

	s.logger.Info("delete employee success", zap.Int64("user_id", id))
	return nil
}

// AssignRole replaces the user's role links with the base employee role plus
// the requested role when it differs. Re-invoking with the same role is a
// no-op thanks to the unique link constraint.
func (s *service) AssignRole(ctx context.Context, organisationID int64, req AssignRoleRequest) error {
	s.logger.Debug("assign role requested",
		zap.Int64("organisation_id", organisationID),
		zap.Int64("user_id", req.UserID),
		zap.Int64("role_id", req.RoleID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindUserByID(ctx, req.UserID); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.checkOrganisation(ctx, qtx, req.UserID, organisationID); err != nil {
		return err
	}

	employeeRoleID, err := qtx.RoleIDByName(ctx, user.RoleEmployee)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrRoleNotFound
		}
		return mapRepositoryError(err)
	}

	roleIDs := []int64{employeeRoleID}
	if req.RoleID != employeeRoleID {
		roleIDs = append(roleIDs, req.RoleID)
	}

	if err := qtx.ReplaceRoles(ctx, req.UserID, roleIDs); err != nil {
		s.logger.Error("assign role failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if s.directory != nil {
		s.directory.InvalidateDirectory(ctx, organisationID)
	}
	if s.policies != nil {
		if err := s.policies.InvalidateOrganisationPolicy(organisationID); err != nil {
			s.logger.Warn("assign role policy invalidation failed",
				zap.Int64("organisation_id", organisationID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("assign role success",
		zap.Int64("user_id", req.UserID),
		zap.Int64("role_id", req.RoleID),
	)
	return nil
}

func (s *service) Export(ctx context.Context, organisationID int64) (*excelize.File, error) {
	s.logger.Debug("export employees requested", zap.Int64("organisation_id", organisationID))

	rows, err := s.repo.ExportRows(ctx, organisationID)
	if err != nil {
		s.logger.Error("export employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	data := make([][]interface{}, len(rows))
	for i, row := range rows {
		rate := ""
		if row.HourlyRate != nil {
			rate = strconv.FormatFloat(*row.HourlyRate, 'f', -1, 64)
		}
		data[i] = []interface{}{
			row.ID,
			row.Name,
			row.Email,
			row.Mobile,
			row.JobTitle,
			row.Address,
			rate,
			row.CreatedAt.Format(joiningDateLayout),
		}
	}

	return spreadsheet.Build("Employees", exportHeaders, data)
}

func (s *service) checkOrganisation(ctx context.Context, repo Repository, userID, organisationID int64) error {
	mapped, err := repo.OrganisationOf(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if mapped == 0 || mapped != organisationID {
		return employeeerrors.ErrWrongOrganisation
	}
	return nil
}

func parseHourlyRate(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHourlyRate
	}
	return &rate, nil
}

func mergeCustomFields(existing []byte, updates map[string]string) ([]byte, error) {
	merged := map[string]string{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return nil, err
		}
	}
	for k, v := range updates {
		merged[k] = v
	}
	return json.Marshal(merged)
}

func mapProfile(p *EmployeeDetails) ProfileResponse {
	resp := ProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		JobTitle:      p.JobTitle,
		Address:       p.Address,
		HourlyRate:    p.HourlyRate,
		SlackUsername: p.SlackUsername,
	}
	if p.JoiningDate != nil {
		resp.JoiningDate = p.JoiningDate.Format(joiningDateLayout)
	}
	if len(p.CustomFields) > 0 {
		fields := map[string]string{}
		if json.Unmarshal(p.CustomFields, &fields) == nil {
			resp.CustomFields = fields
		}
	}
	return resp
}

func mapToResponse(u *user.User, p *EmployeeDetails) EmployeeResponse {
	return EmployeeResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Mobile:  u.Mobile,
		Gender:  u.Gender,
		Status:  u.Status,
		Image:   u.Image,
		Profile: mapProfile(p),
	}
}

package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	projecterrors "go-workhub/internal/project/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// FormatMinutes renders a minute total as "H hrs M mins". The hours segment
// is always present, even at zero; the minutes segment appears only for a
// non-zero remainder. FormatMinutes(125) is "2 hrs 5 mins", FormatMinutes(120)
// is "2 hrs ", FormatMinutes(5) is "0 hrs 5 mins".
func FormatMinutes(minutes int64) string {
	if minutes < 0 {
		minutes = 0
	}

	out := fmt.Sprintf("%d hrs ", minutes/60)
	if rem := minutes % 60; rem > 0 {
		out += fmt.Sprintf("%d mins", rem)
	}
	return out
}

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	EmployeeTasks(ctx context.Context, userID int64, hideCompleted bool) ([]TaskResponse, error)
	EmployeeTimeLogs(ctx context.Context, userID int64) ([]TimeLogResponse, error)
	AssignAdmin(ctx context.Context, organisationID, projectID, userID int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) EmployeeTasks(ctx context.Context, userID int64, hideCompleted bool) ([]TaskResponse, error) {
	s.logger.Debug("employee tasks requested",
		zap.Int64("user_id", userID),
		zap.Bool("hide_completed", hideCompleted),
	)

	rows, err := s.repo.TasksByUser(ctx, userID, hideCompleted)
	if err != nil {
		s.logger.Error("employee tasks failed", zap.Error(err))
		return nil, err
	}

	out := make([]TaskResponse, len(rows))
	for i, row := range rows {
		due := ""
		if row.DueDate != nil {
			due = row.DueDate.Format(dateLayout)
		}
		out[i] = TaskResponse{
			ID:          row.ID,
			ProjectID:   row.ProjectID,
			ProjectName: row.ProjectName,
			Title:       row.Title,
			Status:      row.Status,
			DueDate:     due,
		}
	}
	return out, nil
}

func (s *service) EmployeeTimeLogs(ctx context.Context, userID int64) ([]TimeLogResponse, error) {
	s.logger.Debug("employee time logs requested", zap.Int64("user_id", userID))

	rows, err := s.repo.TimeLogsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("employee time logs failed", zap.Error(err))
		return nil, err
	}

	out := make([]TimeLogResponse, len(rows))
	for i, row := range rows {
		out[i] = TimeLogResponse{
			ID:          row.ID,
			ProjectID:   row.ProjectID,
			ProjectName: row.ProjectName,
			TaskTitle:   row.TaskTitle,
			Minutes:     row.Minutes,
			Duration:    FormatMinutes(row.Minutes),
			Note:        row.Note,
			LoggedAt:    row.LoggedAt.Format(time.RFC3339),
		}
	}
	return out, nil
}

func (s *service) AssignAdmin(ctx context.Context, organisationID, projectID, userID int64) error {
	s.logger.Debug("assign project admin requested",
		zap.Int64("organisation_id", organisationID),
		zap.Int64("project_id", projectID),
		zap.Int64("user_id", userID),
	)

	p, err := s.repo.ProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projecterrors.ErrProjectNotFound
		}
		return err
	}
	if p.OrganisationSettingID != organisationID {
		return projecterrors.ErrWrongOrganisation
	}

	if err := s.repo.AssignProjectAdmin(ctx, projectID, userID); err != nil {
		s.logger.Error("assign project admin failed", zap.Error(err))
		return err
	}

	s.logger.Info("project admin assigned",
		zap.Int64("project_id", projectID),
		zap.Int64("user_id", userID),
	)
	return nil
}

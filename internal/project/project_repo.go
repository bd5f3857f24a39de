package project

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// TaskRow joins a task with its project name for the per-employee view.
type TaskRow struct {
	ID          int64      `gorm:"column:id"`
	ProjectID   int64      `gorm:"column:project_id"`
	ProjectName string     `gorm:"column:project_name"`
	Title       string     `gorm:"column:title"`
	Status      string     `gorm:"column:status"`
	DueDate     *time.Time `gorm:"column:due_date"`
}

type TimeLogRow struct {
	ID          int64     `gorm:"column:id"`
	ProjectID   int64     `gorm:"column:project_id"`
	ProjectName string    `gorm:"column:project_name"`
	TaskTitle   string    `gorm:"column:task_title"`
	Minutes     int64     `gorm:"column:minutes"`
	Note        string    `gorm:"column:note"`
	LoggedAt    time.Time `gorm:"column:logged_at"`
}

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	TasksByUser(ctx context.Context, userID int64, hideCompleted bool) ([]TaskRow, error)
	TimeLogsByUser(ctx context.Context, userID int64) ([]TimeLogRow, error)
	CompletedTaskCount(ctx context.Context, userID int64) (int64, error)
	MinutesLogged(ctx context.Context, userID int64) (int64, error)
	ProjectByID(ctx context.Context, id int64) (*Project, error)
	AssignProjectAdmin(ctx context.Context, projectID, userID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TasksByUser(ctx context.Context, userID int64, hideCompleted bool) ([]TaskRow, error) {
	q := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.id, tasks.project_id, projects.name AS project_name, tasks.title, tasks.status, tasks.due_date").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.assignee_id = ?", userID).
		Order("tasks.due_date ASC NULLS LAST, tasks.id ASC")

	if hideCompleted {
		q = q.Where("tasks.status <> ?", TaskStatusCompleted)
	}

	var rows []TaskRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) TimeLogsByUser(ctx context.Context, userID int64) ([]TimeLogRow, error) {
	var rows []TimeLogRow
	err := r.db.WithContext(ctx).
		Table("project_time_logs").
		Select("project_time_logs.id, project_time_logs.project_id, projects.name AS project_name, COALESCE(tasks.title, '') AS task_title, project_time_logs.minutes, project_time_logs.note, project_time_logs.logged_at").
		Joins("JOIN projects ON projects.id = project_time_logs.project_id").
		Joins("LEFT JOIN tasks ON tasks.id = project_time_logs.task_id").
		Where("project_time_logs.user_id = ?", userID).
		Order("project_time_logs.logged_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CompletedTaskCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("assignee_id = ? AND status = ?", userID, TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

// MinutesLogged sums every time log of the user across all projects.
func (r *repository) MinutesLogged(ctx context.Context, userID int64) (int64, error) {
	var minutes int64
	err := r.db.WithContext(ctx).
		Table("project_time_logs").
		Select("COALESCE(SUM(minutes), 0)").
		Where("user_id = ?", userID).
		Scan(&minutes).Error
	return minutes, err
}

func (r *repository) ProjectByID(ctx context.Context, id int64) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AssignProjectAdmin upserts the membership and promotes it to admin.
func (r *repository) AssignProjectAdmin(ctx context.Context, projectID, userID int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO project_members (project_id, user_id, role, created_at, updated_at)
		VALUES (?, ?, ?, now(), now())
		ON CONFLICT (project_id, user_id) DO UPDATE
		SET role = EXCLUDED.role, updated_at = now()
	`, projectID, userID, MemberRoleAdmin).Error
}

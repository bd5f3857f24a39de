package project

import "time"

const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// MemberRoleAdmin marks the project-level administrator in project_members.
const MemberRoleAdmin = "admin"

type Project struct {
	ID                    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name                  string `gorm:"column:name;type:varchar(255)"`
	OrganisationSettingID int64  `gorm:"column:organisation_setting_id;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Project) TableName() string { return "projects" }

type ProjectMember struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID int64  `gorm:"column:project_id;uniqueIndex:uq_project_member"`
	UserID    int64  `gorm:"column:user_id;uniqueIndex:uq_project_member"`
	Role      string `gorm:"column:role;type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProjectMember) TableName() string { return "project_members" }

type Task struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID  int64      `gorm:"column:project_id;index"`
	AssigneeID int64      `gorm:"column:assignee_id;index"`
	Title      string     `gorm:"column:title;type:varchar(255)"`
	Status     string     `gorm:"column:status;type:varchar(30);default:open"`
	DueDate    *time.Time `gorm:"column:due_date;type:date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Task) TableName() string { return "tasks" }

type ProjectTimeLog struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID int64     `gorm:"column:project_id;index"`
	TaskID    *int64    `gorm:"column:task_id"`
	UserID    int64     `gorm:"column:user_id;index"`
	Minutes   int64     `gorm:"column:minutes"`
	Note      string    `gorm:"column:note;type:text"`
	LoggedAt  time.Time `gorm:"column:logged_at"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProjectTimeLog) TableName() string { return "project_time_logs" }

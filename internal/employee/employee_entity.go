package employee

import (
	"time"
)

// EmployeeDetails is the 1:1 profile extension of a user. The unique index
// on user_id is what makes the lazy get-or-create an atomic upsert.
type EmployeeDetails struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID        int64      `gorm:"column:user_id;uniqueIndex:uq_employee_details_user"`
	JobTitle      string     `gorm:"column:job_title;type:varchar(255)"`
	Address       string     `gorm:"column:address;type:text"`
	HourlyRate    *float64   `gorm:"column:hourly_rate"`
	SlackUsername string     `gorm:"column:slack_username;type:varchar(100)"`
	JoiningDate   *time.Time `gorm:"column:joining_date;type:date"`
	CustomFields  []byte     `gorm:"column:custom_fields;type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (EmployeeDetails) TableName() string { return "employee_details" }

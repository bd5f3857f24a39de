package employee

type CreateEmployeeRequest struct {
	Name          string            `json:"name" binding:"required"`
	Email         string            `json:"email" binding:"required,email"`
	Password      string            `json:"password" binding:"required,min=8"`
	Mobile        string            `json:"mobile"`
	Gender        string            `json:"gender"`
	JobTitle      string            `json:"job_title" binding:"required"`
	HourlyRate    string            `json:"hourly_rate" binding:"omitempty,numeric"`
	Address       string            `json:"address"`
	SlackUsername string            `json:"slack_username"`
	JoiningDate   string            `json:"joining_date" binding:"required"`
	AvatarURL     string            `json:"avatar_url" binding:"omitempty,url"`
	CustomFields  map[string]string `json:"custom_fields"`
}

// UpdateEmployeeRequest uses pointers for profile fields so an omitted field
// is distinguishable from an explicit empty value: omitted fields are never
// clobbered.
type UpdateEmployeeRequest struct {
	Name          string            `json:"name" binding:"required"`
	Email         string            `json:"email" binding:"required,email"`
	Password      string            `json:"password"`
	Mobile        *string           `json:"mobile"`
	Gender        *string           `json:"gender"`
	Status        *string           `json:"status" binding:"omitempty,oneof=active inactive"`
	JobTitle      string            `json:"job_title" binding:"required"`
	HourlyRate    *string           `json:"hourly_rate" binding:"omitempty,numeric"`
	Address       *string           `json:"address"`
	SlackUsername *string           `json:"slack_username"`
	JoiningDate   *string           `json:"joining_date"`
	AvatarURL     string            `json:"avatar_url" binding:"omitempty,url"`
	CustomFields  map[string]string `json:"custom_fields"`
}

type AssignRoleRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
	RoleID int64 `json:"role_id" binding:"required"`
}

type ProfileResponse struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	JobTitle      string            `json:"job_title"`
	Address       string            `json:"address"`
	HourlyRate    *float64          `json:"hourly_rate,omitempty"`
	SlackUsername string            `json:"slack_username,omitempty"`
	JoiningDate   string            `json:"joining_date,omitempty"`
	CustomFields  map[string]string `json:"custom_fields,omitempty"`
}

type EmployeeResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Mobile  string          `json:"mobile,omitempty"`
	Gender  string          `json:"gender,omitempty"`
	Status  string          `json:"status"`
	Image   string          `json:"image,omitempty"`
	Profile ProfileResponse `json:"profile"`
}

type RowResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Image       string   `json:"image,omitempty"`
	Status      string   `json:"status"`
	Roles       []string `json:"roles"`
	PrimaryRole string   `json:"primary_role"`
	CreatedAt   string   `json:"created_at"`
}

type ShowResponse struct {
	Employee       EmployeeResponse `json:"employee"`
	TasksCompleted int64            `json:"tasks_completed"`
	HoursLogged    string           `json:"hours_logged"`
}

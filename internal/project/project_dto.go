package project

type TaskResponse struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
}

type TimeLogResponse struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	TaskTitle   string `json:"task_title,omitempty"`
	Minutes     int64  `json:"minutes"`
	Duration    string `json:"duration"`
	Note        string `json:"note,omitempty"`
	LoggedAt    string `json:"logged_at"`
}

type AssignAdminRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

package domain

type EnforceRequest struct {
	UserID         int64  `json:"user_id" binding:"required"`
	OrganisationID int64  `json:"organisation_id" binding:"required"`
	Resource       string `json:"resource" binding:"required"`
	Action         string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

package social

// ExternalProfile is the normalised payload a provider callback hands over.
type ExternalProfile struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token"`
	Gender   string `json:"gender"`
	Headline string `json:"headline"`
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
}

type ResolvedUserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Image   string `json:"image,omitempty"`
	Status  string `json:"status"`
	Created bool   `json:"created"`
}

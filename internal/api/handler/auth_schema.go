package handler

// errorResponse mirrors the envelope rendered by the central error handler,
// declared here for the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required"`
	RoleID   int64  `json:"role_id,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type meResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

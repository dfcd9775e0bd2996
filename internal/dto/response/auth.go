package response

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

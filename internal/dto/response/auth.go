package response

type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

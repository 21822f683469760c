package api

// LoginRequest представляет запрос аутентификации.
// InviteCode передается только при первом входе нового пользователя.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	InviteCode string `json:"invite_code,omitempty"`
}

// LoginResponse представляет ответ сервера на успешный вход
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

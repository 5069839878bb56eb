package dto

import "github.com/yigit/gradebook/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	LoggedIn bool        `json:"loggedIn" example:"true"`
	Username string      `json:"username,omitempty" example:"admin"`
	Role     models.Role `json:"role,omitempty" example:"admin"`
}

// MenuItem is one action of the menu with whether the current role may use it
type MenuItem struct {
	Key     string `json:"key" example:"score.add"`
	Title   string `json:"title" example:"Add score"`
	Method  string `json:"method" example:"POST"`
	Path    string `json:"path" example:"/api/v1/scores"`
	Allowed bool   `json:"allowed" example:"true"`
}

// MenuResponse lists the actions available in the current session
type MenuResponse struct {
	Username string      `json:"username" example:"teacher1"`
	Role     models.Role `json:"role" example:"teacher"`
	Items    []MenuItem  `json:"items"`
}

package models

type (
	// Token represents the response from POST /auth/token
	Token struct {
		AccessToken  string `json:"access_token"`
		TokenType    string `json:"token_type"`
		IsFirstLogin bool   `json:"is_first_login"`
	}

	// User represents the response from GET /auth/me
	User struct {
		ID           int    `json:"id"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		Rank         string `json:"rank,omitempty"`
		StationName  string `json:"station_name,omitempty"`
		DistrictName string `json:"district_name,omitempty"`
		ZoneName     string `json:"zone_name,omitempty"`
		IsActive     bool   `json:"is_active"`
		IsFirstLogin bool   `json:"is_first_login"`
	}

	// Registration is the body of POST /auth/register
	Registration struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	// PasswordChange is the body of POST /auth/change-password
	PasswordChange struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}

	// AuditLog represents an entry of GET /admin/logs
	AuditLog struct {
		ID        int    `json:"id"`
		User      string `json:"user"`
		Action    string `json:"action"`
		Details   string `json:"details"`
		Timestamp Time   `json:"timestamp"`
	}
)

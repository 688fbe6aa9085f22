package dto

// RegisterRequest represents a student registration
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=255" example:"Alice"`
	LastName  string `json:"last_name" binding:"required,max=255" example:"Smith"`
	Grade     string `json:"grade" binding:"max=64" example:"11"`
	Email     string `json:"email" binding:"required,email" example:"alice@example.com"`
	Country   string `json:"country" binding:"max=128" example:"Canada"`
	Phone     string `json:"phone" binding:"max=64" example:"+1 555 0100"`
	Password  string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	ID      int64  `json:"id" example:"1"`
	Message string `json:"message" example:"Student registered successfully"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse reports the matched role and an access token
type LoginResponse struct {
	Message     string `json:"message" example:"Login successful"`
	Role        string `json:"role" example:"student" enums:"student,admin"`
	UserID      int64  `json:"user_id" example:"1"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

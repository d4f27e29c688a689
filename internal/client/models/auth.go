package models

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupData is the account creation request body.
type SignupData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

// GoogleProfile is what the federated login endpoint expects after the
// OAuth handshake has been completed by the caller.
type GoogleProfile struct {
	GoogleID     string `json:"googleId"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// AuthResponse is returned by login, signup, federated login and refresh.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// VerifyResponse is returned by the token verification endpoint.
type VerifyResponse struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// MessageResponse covers endpoints that only acknowledge with a message.
type MessageResponse struct {
	Message string `json:"message"`
}

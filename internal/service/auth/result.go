package auth

import "github.com/heartmarshall/library-backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string       // raw token, NOT hash
	User         *domain.User
}

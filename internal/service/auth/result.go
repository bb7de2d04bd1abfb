package auth

// TokenResult is returned by signup, login and refresh.
type TokenResult struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
}

package auth

import "github.com/heartmarshall/unwind-backend/pkg/validation"

// SignupInput holds parameters for account creation.
type SignupInput struct {
	Email    string `field:"email"    validate:"required,email,max=255"`
	Password string `field:"password" validate:"required,min=8,max=50"`
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	return validation.Struct(i)
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string `field:"email"    validate:"required,max=255"`
	Password string `field:"password" validate:"required,max=50"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	return validation.Struct(i)
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string `field:"refreshToken" validate:"required,max=1024"`
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	return validation.Struct(i)
}

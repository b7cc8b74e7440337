package dto

// RegisterCompanyRepInput carries a company representative registration.
type RegisterCompanyRepInput struct {
	Email       string `validate:"required,email"`
	Name        string `validate:"required,min=1"`
	Password    string `validate:"required,min=1"`
	CompanyName string `validate:"required,min=1"`
	Department  string `validate:"required,min=1"`
	Position    string `validate:"required,min=1"`
}

// ChangePasswordInput carries a password change request.
type ChangePasswordInput struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,min=1"`
}

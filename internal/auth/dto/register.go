package dto

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required,max=50,person_name"`
	LastName        string `json:"last_name" validate:"required,max=50,person_name"`
	Password        string `json:"password" validate:"required,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	TermsAccepted   bool   `json:"terms_accepted" validate:"required"`
}

package request

import (
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	ProfileRequest
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

func (r *RegisterRequest) ToInput() (commands.RegisterInput, error) {
	profile, err := r.ProfileRequest.ToDomain()
	if err != nil {
		return commands.RegisterInput{}, err
	}
	return commands.RegisterInput{
		Profile:              profile,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
	}, nil
}

// ProfileRequest is shared by registration and profile edits.
type ProfileRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Kana        string `json:"kana" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,max=255"`
	PostalCode  string `json:"postal_code" binding:"required"`
	Address     string `json:"address" binding:"required,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Birthday    string `json:"birthday"`
	Occupation  string `json:"occupation" binding:"max=255"`
}

func (r *ProfileRequest) ToDomain() (user.Profile, error) {
	var p user.Profile
	if err := copier.Copy(&p, r); err != nil {
		return user.Profile{}, err
	}
	return p, nil
}

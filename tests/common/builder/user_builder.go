//go:build unit || e2e

package builder

import (
	"time"

	"nagoyameshi/internal/domain/user"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Kana         string
	Email        string
	PasswordHash string
	PostalCode   string
	Address      string
	PhoneNumber  string
	Birthday     string
	Occupation   string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Name:         "侍 太郎",
		Kana:         "サムライ タロウ",
		Email:        "taro@example.com",
		PasswordHash: "hashed_password",
		PostalCode:   "1010022",
		Address:      "東京都千代田区神田練塀町300番地",
		PhoneNumber:  "09012345678",
		Birthday:     "19900401",
		Occupation:   "エンジニア",
		CreatedAt:    time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildProfile() user.Profile {
	return user.Profile{
		Name:        u.Name,
		Kana:        u.Kana,
		Email:       u.Email,
		PostalCode:  u.PostalCode,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Birthday:    u.Birthday,
		Occupation:  u.Occupation,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.BuildProfile(), u.PasswordHash, u.CreatedAt)
}

func (u *UserBuilder) BuildReconstructed() *user.User {
	return user.ReconstructUser(u.ID, u.Name, u.Kana, u.Email, u.PasswordHash, u.PostalCode, u.Address, u.PhoneNumber,
		u.birthday(), u.Occupation, u.CreatedAt, u.CreatedAt)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Name:        u.Name,
		Kana:        u.Kana,
		Email:       u.Email,
		PostalCode:  u.PostalCode,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Birthday:    u.birthday(),
		Occupation:  u.Occupation,
		CreatedAt:   u.CreatedAt,
	}
}

func (u *UserBuilder) BuildProfileDTO() reqdto.ProfileRequest {
	return reqdto.ProfileRequest{
		Name:        u.Name,
		Kana:        u.Kana,
		Email:       u.Email,
		PostalCode:  u.PostalCode,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Birthday:    u.Birthday,
		Occupation:  u.Occupation,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		ProfileRequest:       u.BuildProfileDTO(),
		Password:             DefaultPassword,
		PasswordConfirmation: DefaultPassword,
	}
}

func (u *UserBuilder) birthday() *time.Time {
	if u.Birthday == "" {
		return nil
	}
	b, err := time.Parse("20060102", u.Birthday)
	if err != nil {
		return nil
	}
	return &b
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

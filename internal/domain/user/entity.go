package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"nagoyameshi/internal/pkg/errs"
)

// Profile is the editable part of a member, as submitted.
type Profile struct {
	Name        string
	Kana        string
	Email       string
	PostalCode  string
	Address     string
	PhoneNumber string
	Birthday    string // yyyymmdd or empty
	Occupation  string
}

type User struct {
	id           int64
	name         string
	kana         string
	email        Email
	passwordHash string
	postalCode   string
	address      string
	phoneNumber  string
	birthday     *time.Time
	occupation   string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(p Profile, passwordHash string, now time.Time) (*User, error) {
	u := &User{passwordHash: passwordHash, createdAt: now}
	if err := u.apply(p, now); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructUser(id int64, name, kana, email, passwordHash, postalCode, address, phoneNumber string,
	birthday *time.Time, occupation string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		kana:         kana,
		email:        Email{value: email},
		passwordHash: passwordHash,
		postalCode:   postalCode,
		address:      address,
		phoneNumber:  phoneNumber,
		birthday:     birthday,
		occupation:   occupation,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateProfile replaces every profile field; the password is untouched.
func (u *User) UpdateProfile(p Profile, now time.Time) error {
	return u.apply(p, now)
}

func (u *User) apply(p Profile, now time.Time) error {
	name, err := newName(p.Name)
	if err != nil {
		return errs.Invalid("name", err)
	}
	kana, err := newKana(p.Kana)
	if err != nil {
		return errs.Invalid("kana", err)
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return errs.Invalid("email", err)
	}
	postal, err := newPostalCode(p.PostalCode)
	if err != nil {
		return errs.Invalid("postal_code", err)
	}
	address, err := newAddress(p.Address)
	if err != nil {
		return errs.Invalid("address", err)
	}
	phone, err := newPhoneNumber(p.PhoneNumber)
	if err != nil {
		return errs.Invalid("phone_number", err)
	}
	birthday, err := parseBirthday(p.Birthday)
	if err != nil {
		return errs.Invalid("birthday", err)
	}
	occupation := strings.TrimSpace(p.Occupation)
	if utf8.RuneCountInString(occupation) > MaxTextLength {
		return errs.Invalid("occupation", ErrNameTooLong)
	}

	u.name = name
	u.kana = kana
	u.email = email
	u.postalCode = postal
	u.address = address
	u.phoneNumber = phone
	u.birthday = birthday
	u.occupation = occupation
	u.updatedAt = now
	return nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Kana() string         { return u.kana }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) PostalCode() string   { return u.postalCode }
func (u *User) Address() string      { return u.address }
func (u *User) PhoneNumber() string  { return u.phoneNumber }
func (u *User) Birthday() *time.Time { return u.birthday }
func (u *User) Occupation() string   { return u.occupation }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// OwnerID makes a member the owner of their own profile.
func (u *User) OwnerID() int64 { return u.id }

package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// Hasher lets use cases hash and verify without depending on bcrypt directly.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() Hasher {
	return &BcryptHasher{cost: DefaultCost}
}

// NewBcryptHasherWithCost is for tests that need fast hashing.
func NewBcryptHasherWithCost(cost int) Hasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	return hashWithCost(plain, h.cost)
}

func (h *BcryptHasher) Compare(hashed, plain string) error {
	return ComparePassword(hashed, plain)
}

func HashPassword(password string) (string, error) {
	return hashWithCost(password, DefaultCost)
}

func hashWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

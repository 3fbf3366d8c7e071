package category

import (
	"errors"
	"strings"
	"unicode/utf8"

	"nagoyameshi/internal/pkg/errs"
)

var (
	ErrEmptyName   = errors.New("category name is required")
	ErrNameTooLong = errors.New("category name exceeds maximum length")
)

const MaxNameLength = 255

type Category struct {
	id   int64
	name string
}

func NewCategory(name string) (*Category, error) {
	c := &Category{}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCategory(id int64, name string) *Category {
	return &Category{id: id, name: name}
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Invalid("name", ErrEmptyName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errs.Invalid("name", ErrNameTooLong)
	}
	c.name = name
	return nil
}

func (c *Category) ID() int64    { return c.id }
func (c *Category) Name() string { return c.name }

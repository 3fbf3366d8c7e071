package commands

import (
	"context"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/site"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

// CatalogCommands manage restaurants, categories and the static site pages.
type CatalogCommands interface {
	CreateRestaurant(ctx context.Context, a restaurant.Attributes) (int64, error)
	UpdateRestaurant(ctx context.Context, id int64, a restaurant.Attributes) error
	DeleteRestaurant(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, name string) (int64, error)
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error

	UpdateCompany(ctx context.Context, c site.Company) error
	UpdateTerms(ctx context.Context, content string) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (uc *catalogCommandsImpl) CreateRestaurant(ctx context.Context, a restaurant.Attributes) (int64, error) {
	rest, err := restaurant.NewRestaurant(a, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkCategories(ctx, tx, rest.CategoryIDs()); err != nil {
			return err
		}
		created, err := tx.Restaurants().Create(ctx, rest)
		if err != nil {
			return associationError(err)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *catalogCommandsImpl) UpdateRestaurant(ctx context.Context, id int64, a restaurant.Attributes) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rest, err := tx.Restaurants().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRestaurantNotFound
			}
			return err
		}
		if err := rest.Update(a, uc.clock.Now()); err != nil {
			return err
		}
		if err := checkCategories(ctx, tx, rest.CategoryIDs()); err != nil {
			return err
		}
		if err := tx.Restaurants().Update(ctx, rest); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRestaurantNotFound
			}
			return associationError(err)
		}
		return nil
	})
}

func (uc *catalogCommandsImpl) DeleteRestaurant(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Restaurants().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRestaurantNotFound
			}
			return err
		}
		return nil
	})
}

func checkCategories(ctx context.Context, tx shared.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := tx.Categories().CountExisting(ctx, ids)
	if err != nil {
		return err
	}
	if n != len(ids) {
		return errs.Invalid("category_ids", ErrUnknownCategory)
	}
	return nil
}

// associationError turns a dangling holiday reference into a validation failure.
func associationError(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Invalid("regular_holiday_ids", ErrUnknownHoliday)
	}
	return err
}

func (uc *catalogCommandsImpl) CreateCategory(ctx context.Context, name string) (int64, error) {
	c, err := category.NewCategory(name)
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Categories().Create(ctx, c)
		if err != nil {
			return categoryError(err)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *catalogCommandsImpl) UpdateCategory(ctx context.Context, id int64, name string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Categories().FindByID(ctx, id)
		if err != nil {
			return categoryError(err)
		}
		if err := c.Rename(name); err != nil {
			return err
		}
		return categoryError(tx.Categories().Update(ctx, c))
	})
}

func (uc *catalogCommandsImpl) DeleteCategory(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return categoryError(tx.Categories().Delete(ctx, id))
	})
}

func categoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrCategoryNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Invalid("name", errs.ErrCategoryNameTaken)
	default:
		return err
	}
}

func (uc *catalogCommandsImpl) UpdateCompany(ctx context.Context, c site.Company) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Site().Company(ctx)
		if err != nil {
			return err
		}
		c.ID = current.ID
		if err := c.Validate(); err != nil {
			return err
		}
		return tx.Site().SaveCompany(ctx, &c)
	})
}

func (uc *catalogCommandsImpl) UpdateTerms(ctx context.Context, content string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Site().Terms(ctx)
		if err != nil {
			return err
		}
		current.Content = content
		if err := current.Validate(); err != nil {
			return err
		}
		return tx.Site().SaveTerms(ctx, current)
	})
}

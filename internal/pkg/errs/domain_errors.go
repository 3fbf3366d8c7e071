package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lookup errors
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubscriptionMissing = errors.New("subscription not found")

	// Conflict errors
	ErrEmailTaken        = errors.New("email already registered")
	ErrCategoryNameTaken = errors.New("category name already exists")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrBillingFailed           = errors.New("billing provider failure")
)

package commands

import (
	"nagoyameshi/internal/pkg/errs"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrUnknownCategory      = errs.New("category does not exist")
	ErrUnknownHoliday       = errs.New("regular holiday does not exist")
	ErrPaymentMethodMissing = errs.New("payment method is required")
	ErrInvalidWebhook       = errs.New("invalid billing webhook")
)

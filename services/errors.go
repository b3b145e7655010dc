package services

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidEntry    = errors.New("entry is missing required fields or has negative nutrition values")
	ErrItemNotFound    = errors.New("food log item not found")
	ErrZeroWaterDelta  = errors.New("water adjustment of zero is a no-op")
	ErrFoodNotFound    = errors.New("custom food not found")
	ErrEmailTaken      = errors.New("email is already registered")
)

package auctionerrors

import (
	"errors"
	"fmt"
)

// Ошибки входных данных
var (
	ErrValidation = errors.New("validation failed")
)

// Ошибки хранилища
var (
	ErrNotFound    = errors.New("record not found")
	ErrTransaction = errors.New("transaction failed")

	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
)

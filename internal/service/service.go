package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "geometa/internal/errors"
)

// Invalidator drops cached representations of resources. *cache.Client
// satisfies it.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, ...string) {}

func orNoop(inv Invalidator) Invalidator {
	if inv == nil {
		return noopInvalidator{}
	}
	return inv
}

// translate maps store errors to domain errors. op names the failed
// operation for wrapped internal errors.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Conflict("Conflicts with an existing user.")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperrors.Validation("Value violates a store constraint.", err.Error())
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.Validation("Referenced resource does not exist.")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func notFound(err error, message, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

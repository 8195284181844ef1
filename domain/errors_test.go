package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrValidation,
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrInvalidCredentials,
		ErrTooManyAttempts,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
		ErrUnauthenticated,
		ErrForbidden,
		ErrProductNotFound,
		ErrProductLineNotFound,
		ErrSaleNotFound,
		ErrStorageUnavailable,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("error %v should not match %v", a, b)
			}
		}
	}
}

func TestWrappedErrorsMatchSentinels(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w: connection refused", ErrStorageUnavailable)
	if !errors.Is(wrapped, ErrStorageUnavailable) {
		t.Error("wrapped storage error should match ErrStorageUnavailable")
	}

	wrapped = fmt.Errorf("%w: username is required", ErrValidation)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped validation error should match ErrValidation")
	}
}

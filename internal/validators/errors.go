package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrFieldValidation is the parent of every form field error below.
	ErrFieldValidation = errors.New("invalid leak form")

	ErrMissingField     = fmt.Errorf("%w: missing field", ErrFieldValidation)
	ErrEmptyContext     = fmt.Errorf("%w: context must not be empty", ErrFieldValidation)
	ErrInvalidShareDate = fmt.Errorf("%w: share date must be an integer timestamp in milliseconds", ErrFieldValidation)
	ErrMissingLeakFile  = fmt.Errorf("%w: exactly one leak file is required", ErrFieldValidation)
)

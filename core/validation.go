package core

import (
	"fmt"
)

// ValidateResolutionRequest validates a ResolutionRequest according to domain rules.
//
// Validation rules:
//   - Term must not be empty after normalization
//   - Every source must be a well-formed abbreviation (see ValidateSource)
//
// NOT validated:
//   - Whether the sources exist remotely (the service answers 404 or nothing)
func ValidateResolutionRequest(req ResolutionRequest) error {
	if req.Term() == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrEmptyTerm)
	}

	for _, s := range req.sources {
		if err := ValidateSource(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}

	return nil
}

// ValidateSource checks that a source vocabulary abbreviation (SAB) only
// uses uppercase letters, digits, '_' and '-'.
func ValidateSource(sab string) error {
	if sab == "" {
		return fmt.Errorf("%w: empty abbreviation", ErrInvalidSource)
	}
	for _, r := range sab {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidSource, sab)
		}
	}
	return nil
}

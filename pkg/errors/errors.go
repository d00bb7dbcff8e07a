// Package errors provides common domain error types for chatstats.
//
// This package defines sentinel errors for the two failure kinds the analysis
// core can produce. Malformed transcript lines are never errors: the parser
// treats anything it does not recognize as a continuation line, so there is no
// "parse error" sentinel here on purpose. Using typed errors enables consistent
// handling with errors.Is() checks.
//
// Usage:
//
//	import cserrors "github.com/finesaaa/chatstats/pkg/errors"
//
//	// Return a domain error
//	return nil, fmt.Errorf("top n must be positive, got %d: %w", n, cserrors.ErrInvalidArgument)
//
//	// Check for domain errors
//	if cserrors.IsInvalidArgument(err) {
//	    // handle bad input
//	}
package errors

import "errors"

// Domain errors - sentinel errors for the analysis core.
var (
	// ErrInvalidArgument indicates a caller contract violation, such as a
	// non-positive top-n or an empty file list where one is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnreadableInput indicates file content that cannot be decoded as text.
	ErrUnreadableInput = errors.New("unreadable input")
)

// IsInvalidArgument reports whether any error in err's chain is ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnreadableInput reports whether any error in err's chain is ErrUnreadableInput.
func IsUnreadableInput(err error) bool {
	return errors.Is(err, ErrUnreadableInput)
}

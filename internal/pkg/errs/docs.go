// Package errs provides the standardized error types used across the shipping backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping.
//
// The package covers the error taxonomy of the core:
//   - ObjectNotFoundError: a user, order, address, shipment, method, or zone is absent
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - VersionIsInvalidError: an optimistic-lock conditional update lost a race
//
// Each error type follows the same shape: a sentinel error variable, a struct with
// the error details, constructors with and without a cause, an Error() method, and
// an Unwrap() method so errors.Is can match the sentinel.
package errs

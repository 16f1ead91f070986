// Package errs provides standardized error types for the restaurant application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the error kinds the application surfaces:
//   - ObjectNotFoundError: a table, order, delivery order, or product could not be resolved
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsOutOfRangeError: a numeric value fell outside its bounds
//   - StateConflictError: an operation was rejected by the entity's current status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// The HTTP adapter classifies errors against the sentinels to pick response
// codes, so every error crossing a use-case boundary should be one of these.
package errs

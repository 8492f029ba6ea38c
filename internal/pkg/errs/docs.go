// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the error categories the service reports:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: an addressed object does not exist
//   - AlreadyExistsError: an idempotency key (e.g. invoice_no) is already taken
//   - StateConflictError: the object is not in a state that allows the operation
//   - ForbiddenError: the acting user may not perform the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Transport adapters classify errors with errors.Is against the sentinels and
// errors.As against the struct types to report the offending field or condition.
package errs

// Package kernel provides the value objects shared by every aggregate of the
// fulfillment domain.
//
// The package includes:
//   - UUID: identifier of invoices, sessions, returns and users
//   - Money: exact decimal amount used for item prices and invoice totals
//   - Email: normalized worker e-mail, the identity proof scanned at each stage
//
// All values are immutable and safe for concurrent use. Zero values are invalid
// wherever the type exposes a Validate or IsZero method.
package kernel

// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and aggregates so that zero values created without their constructor
// fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning value was built by its constructor.
//
//	type ImportInvoiceCommand struct {
//	    invoiceNo string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c ImportInvoiceCommand) Validate() error {
//	    return c.guard.Validate(ErrImportInvoiceCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

// Package services provides domain services that coordinate the invoice and
// session aggregates.
//
// The package includes:
//   - FulfillmentWorkflow: starts and completes stage sessions and advances the invoice
//   - ReturnToBilling: sends an invoice to REVIEW and cancels its open sessions
//
// Services are stateless and never touch storage. Command handlers load the
// aggregates under lock, call a service and persist the result in one transaction.
package services

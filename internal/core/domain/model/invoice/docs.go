// Package invoice contains the Invoice aggregate: the sales document that moves
// through the fulfillment pipeline
//
//	PENDING → PICKING → PICKED → PACKING → PACKED → DISPATCHED → DELIVERED
//
// with a REVIEW side state reached by returning the invoice to billing from
// PICKING, PICKED or PACKING.
//
// The aggregate owns its ordered Items (total_amount is always Σ quantity × mrp),
// its Return history, and the Events recorded by each mutation. Sessions that drive
// the forward transitions live in package session; the domain services coordinate
// both aggregates inside one transaction.
package invoice

// Package session models the work sessions that drive an invoice through the
// picking, packing and delivery stages.
//
// A Session belongs to one invoice and, except for COURIER deliveries, one worker.
// It is active while its end time is unset. The one-active-session-per-worker and
// one-active-session-per-invoice-stage rules span many sessions and are enforced
// by the session repository's storage constraints, not by this package.
package session

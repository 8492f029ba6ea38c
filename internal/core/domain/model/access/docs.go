// Package access defines who may do what: the Role of an authenticated Actor and
// the read Scope derived from it.
//
// ADMIN and SUPERADMIN are privileged and see every invoice and session. Every
// other role sees the invoices it imported or worked on and its own sessions.
// Queries receive a Scope instead of inspecting roles themselves.
package access

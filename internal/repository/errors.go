// Package repository implements data access over MySQL.  This file
// defines sentinel errors shared across repositories so that handlers
// can map failures to HTTP status codes without string matching.
package repository

import "errors"

// ErrNotFound is returned when a record does not exist or is owned by
// a different user.  The two cases are deliberately indistinguishable
// so that the API never reveals whether another user's record exists.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned by user creation when the normalized
// email address is already registered.  Handlers translate this into
// an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

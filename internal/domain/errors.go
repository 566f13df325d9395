package domain

import "errors"

// Sentinel errors returned by the repository layer. Handlers branch on these
// with errors.Is and never expose driver errors to clients.
var (
	// ErrNotFound covers both a missing row and an ownership mismatch on
	// update/delete; the two cases are deliberately indistinguishable so the
	// response leaks nothing about other users' articles.
	ErrNotFound = errors.New("not found")

	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
)

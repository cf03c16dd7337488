package domain

import "errors"

// ErrNotFound is returned when a mutation or fetch targets an article ID
// that is not present in the collection.
var ErrNotFound = errors.New("article not found")

// ErrInvalidCredentials is returned when a login attempt fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

package services

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrGuest is returned for actions that need a customer or store session.
	ErrGuest = errors.New("guests cannot perform this action")
	// ErrInvalidInput marks values rejected before reaching the store.
	ErrInvalidInput = errors.New("invalid input")
)

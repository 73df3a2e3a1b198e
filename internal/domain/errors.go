package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrSignatureMismatch = errors.New("invalid payment signature")
	ErrUpstream          = errors.New("upstream failure")
	ErrDuplicatePayment  = errors.New("duplicate payment")
)

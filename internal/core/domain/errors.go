package domain

import "errors"

var (
	// ErrOutOfStock is returned when a decrement would drive a quantity below zero.
	ErrOutOfStock = errors.New("out of stock")

	// ErrUnknownProduct is returned when a product name is not present in the warehouse.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInvalidSelection is returned for malformed or out-of-range selection actions.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrUnauthorized is returned when an identity is missing from the required role set.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPersistence wraps failures to read or write the state file.
	ErrPersistence = errors.New("persistence failure")
)

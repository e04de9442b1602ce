package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrGatewayUnavailable means a storage call failed while assembling a
	// view; no partial result is returned.
	ErrGatewayUnavailable = errors.New("storage gateway unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Package common defines shared constants and sentinel errors used across
// domainkeeper components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Setter-level errors.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMalformedDate   = errors.New("malformed date")

	// Sync configuration errors (operation aborted, prior state preserved).
	ErrMissingConfiguration = errors.New("sync configuration incomplete")

	// Channel errors (reported, never fatal).
	ErrChannelUnavailable = errors.New("sync channel not configured")
	ErrTransportFailure   = errors.New("sync transport failure")

	// Server-side errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

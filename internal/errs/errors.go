// Package errs contains commonly shared errors
package errs

import "errors"

var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrUnknownTeam      = errors.New("unknown team")
	ErrDatabase         = errors.New("database error")
	ErrInvalidConfig    = errors.New("invalid config")
)

package models

import "errors"

// Domain specific errors shared by the remote client, the session layer and
// the handlers.
var (
	ErrNotFound          = errors.New("requested item not found")
	ErrUnauthenticated   = errors.New("authentication required or invalid credentials")
	ErrForbidden         = errors.New("action forbidden")
	ErrBadRequest        = errors.New("bad request")
	ErrValidation        = errors.New("validation failed")
	ErrRemoteUnavailable = errors.New("remote authority unavailable")
	ErrMalformedResponse = errors.New("malformed response from remote authority")
)

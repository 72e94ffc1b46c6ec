package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidFilter  = errors.New("Invalid filter")

	// upstream listing api answered with a non 2xx status
	ErrUpstream = errors.New("upstream request failed")
	// no chain provider, contract reads are impossible
	ErrNoContract = errors.New("Error in generating listing instance")
	// session expired or never created
	ErrSessionNotFound = errors.New("session not found")
	// a newer fetch of the same kind superseded this one, or the session was closed
	ErrStale = errors.New("stale result dropped")
)

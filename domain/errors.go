package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthenticated will throw if the request carries no valid session
	ErrUnauthenticated = errors.New("you must be signed in")
	// ErrForbidden will throw if the caller is not allowed to perform the action
	ErrForbidden = errors.New("you do not have permission to perform this action")
	// ErrInvalidState will throw if the target entity does not allow the action right now
	ErrInvalidState = errors.New("action not allowed in the current state")
	// ErrCacheMiss is returned by caches when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)

package larch

import "errors"

var (
	// ErrUnregisteredType is returned when Resolve is called for a type with
	// no registration. The error message includes the requested type.
	ErrUnregisteredType = errors.New("type not registered")

	// ErrInvalidConstructor is returned by [Container.Register] when the
	// supplied value is not a function returning (T) or (T, error).
	ErrInvalidConstructor = errors.New("invalid constructor")

	// ErrInvalidFactory is returned by [Container.RegisterFactory] when the
	// supplied value is not a zero-argument function returning (T) or
	// (T, error).
	ErrInvalidFactory = errors.New("invalid factory")

	// ErrAlreadyClosed is returned when Close is called on a context that has
	// already been closed.
	ErrAlreadyClosed = errors.New("context already closed")
)

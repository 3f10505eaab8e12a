package cache

import "errors"

// Resolution errors.
var (
	// ErrTypeMismatch indicates a key resolved to a cache of a different
	// concrete type than the one requested. Two cache kinds share a tag.
	ErrTypeMismatch = errors.New("cache: stored cache type does not match requested type")

	// ErrUnknownKind indicates no factory is registered for a key's kind.
	ErrUnknownKind = errors.New("cache: unknown cache kind")

	// ErrDuplicateKey indicates CreateCache was called for a key that is already present.
	ErrDuplicateKey = errors.New("cache: key already present in container")
)

// Registration errors.
var (
	// ErrDuplicateKind indicates a factory is already registered for the kind.
	ErrDuplicateKind = errors.New("cache: kind already registered")

	// ErrInvalidKind indicates an empty kind or a nil factory was registered.
	ErrInvalidKind = errors.New("cache: invalid kind registration")
)

// Precondition errors.
var (
	// ErrUnowned indicates a cache is not attached to a container.
	ErrUnowned = errors.New("cache: cache has no owning container")

	// ErrNilVertex indicates a container was created without a vertex.
	ErrNilVertex = errors.New("cache: container has no vertex")

	// ErrNilFactory indicates a factory returned a nil cache.
	ErrNilFactory = errors.New("cache: factory returned nil cache")
)

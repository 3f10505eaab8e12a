package cache

import (
	"fmt"
	"reflect"
)

// Resolve returns the cache of type T for (kind, params) in c, creating it
// if absent. Repeated calls with the same kind and parameters return the
// same cache.
//
// Returns ErrTypeMismatch if the stored cache is not a T.
func Resolve[T Cache](c *Container, kind string, params ...Parameter) (T, error) {
	var zero T

	key := NewKey(kind, params...)
	found, ok := c.FindCache(key)
	if !ok {
		var err error
		found, err = c.CreateCache(key)
		if err != nil {
			return zero, err
		}
	}
	c.observer.Resolved(c.vertex, key, !ok)

	typed, isT := found.(T)
	if !isT {
		return zero, fmt.Errorf("%w: key %s holds %T, requested %s",
			ErrTypeMismatch, key, found, reflect.TypeFor[T]())
	}
	return typed, nil
}

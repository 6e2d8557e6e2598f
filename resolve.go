package larch

import (
	"fmt"
	"reflect"
)

// resolveType is the resolution engine: registry lookup, then resolver
// invocation routed by the entry's lifetime. Constructor parameters resolved
// inside the entry's resolver call back into this same function, so a
// dependency cycle recurses without bound.
func resolveType(ctx resolveContext, t reflect.Type) (reflect.Value, error) {
	entry, ok := ctx.registryRef().lookup(t)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnregisteredType, t)
	}

	switch entry.lifetime {
	case Singleton:
		return ctx.rootCache().getOrCreate(t, func() (reflect.Value, error) {
			return entry.resolve(ctx)
		})
	case PerScope:
		return ctx.localCache().getOrCreate(t, func() (reflect.Value, error) {
			return entry.resolve(ctx)
		})
	default:
		return entry.resolve(ctx)
	}
}

// Resolve is a generic helper that resolves a typed value from a context.
// It is the recommended way to retrieve values:
//
//	db, err := larch.Resolve[*Database](c)
func Resolve[T any](c Container) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()

	val, err := c.Resolve(t)
	if err != nil {
		return zero, err
	}

	out, ok := val.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("cannot convert %s to %s", val.Type(), t)
	}

	return out, nil
}

// MustResolve is like [Resolve] but panics on failure. Useful in start-up
// code where a missing registration is a programming error.
func MustResolve[T any](c Container) T {
	out, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return out
}

package larch

import (
	"fmt"
	"reflect"
)

// resolverFunc is a synthesized construction procedure: given a resolution
// context it produces one instance of the registered type.
type resolverFunc func(ctx resolveContext) (reflect.Value, error)

// Registration is the stored binding of an abstract type to its construction
// resolver and lifetime. It doubles as the handle returned by
// [Container.Register] and [Container.RegisterFactory]: use [Registration.AsSingleton]
// or [Registration.PerScope] to change the lifetime from the [Transient]
// default.
//
// Lifetime changes are a registration-phase operation. Re-registering the
// same type replaces the entry; a handle from the earlier registration then
// targets the discarded entry and its lifetime calls have no further effect.
type Registration struct {
	key      reflect.Type
	lifetime Lifetime
	resolve  resolverFunc
}

// AsSingleton sets the [Singleton] lifetime and returns the registration for
// chaining.
func (e *Registration) AsSingleton() *Registration {
	e.lifetime = Singleton
	return e
}

// PerScope sets the [PerScope] lifetime and returns the registration for
// chaining. If both AsSingleton and PerScope are called on one registration,
// the last call wins.
func (e *Registration) PerScope() *Registration {
	e.lifetime = PerScope
	return e
}

// Lifetime returns the registration's current lifetime.
func (e *Registration) Lifetime() Lifetime { return e.lifetime }

// Key returns the abstract type this registration is stored under.
func (e *Registration) Key() reflect.Type { return e.key }

// newConstructorRegistration synthesizes a construction procedure for a
// constructor function. Synthesis runs once, here: the parameter types are
// captured up front, and the returned resolver re-resolves each of them
// through whatever context it is invoked against.
func newConstructorRegistration(constructor interface{}) (*Registration, error) {
	val := reflect.ValueOf(constructor)
	if val.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: expected a function, got %T", ErrInvalidConstructor, constructor)
	}

	typ := val.Type()
	if err := validateReturns(typ); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConstructor, err)
	}

	params := make([]reflect.Type, typ.NumIn())
	for i := range params {
		params[i] = typ.In(i)
	}

	resolver := func(ctx resolveContext) (reflect.Value, error) {
		args := make([]reflect.Value, len(params))
		for i, p := range params {
			arg, err := resolveType(ctx, p)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("resolving %s: %w", p, err)
			}
			args[i] = arg
		}
		return invoke(val, args)
	}

	return &Registration{key: typ.Out(0), lifetime: Transient, resolve: resolver}, nil
}

// newFactoryRegistration wraps a zero-argument factory function. No
// synthesis and no parameter resolution take place; the resolver calls the
// factory directly.
func newFactoryRegistration(factory interface{}) (*Registration, error) {
	val := reflect.ValueOf(factory)
	if val.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: expected a function, got %T", ErrInvalidFactory, factory)
	}

	typ := val.Type()
	if typ.NumIn() != 0 {
		return nil, fmt.Errorf("%w: factory must take no arguments, has %d", ErrInvalidFactory, typ.NumIn())
	}
	if err := validateReturns(typ); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactory, err)
	}

	resolver := func(resolveContext) (reflect.Value, error) {
		return invoke(val, nil)
	}

	return &Registration{key: typ.Out(0), lifetime: Transient, resolve: resolver}, nil
}

// validateReturns checks that fn returns (T) or (T, error).
func validateReturns(fn reflect.Type) error {
	if fn.NumOut() == 0 || fn.NumOut() > 2 {
		return fmt.Errorf("must return (T) or (T, error), returns %d values", fn.NumOut())
	}
	if fn.NumOut() == 2 {
		errType := reflect.TypeOf((*error)(nil)).Elem()
		if !fn.Out(1).Implements(errType) {
			return fmt.Errorf("second return value must implement error, is %s", fn.Out(1))
		}
	}
	return nil
}

// invoke calls fn with args and unwraps an optional trailing error.
func invoke(fn reflect.Value, args []reflect.Value) (reflect.Value, error) {
	results := fn.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return reflect.Value{}, results[1].Interface().(error)
	}
	return results[0], nil
}

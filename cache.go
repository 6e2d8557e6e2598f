package larch

import (
	"errors"
	"io"
	"reflect"
	"sync"
)

// instanceCache is the per-context instance store. Entries are populated
// lazily by getOrCreate and never evicted or replaced for the lifetime of
// the owning context.
type instanceCache struct {
	mu        sync.Mutex
	instances map[reflect.Type]reflect.Value
	closed    bool
}

func newInstanceCache() *instanceCache {
	return &instanceCache{instances: make(map[reflect.Type]reflect.Value)}
}

// getOrCreate returns the cached instance for t, building one with build on
// first access. The lock is released while build runs: construction resolves
// dependencies recursively and may re-enter this same cache. Under a
// first-access race the build may therefore run more than once, but only the
// first stored result is retained and returned to every caller.
func (c *instanceCache) getOrCreate(t reflect.Type, build func() (reflect.Value, error)) (reflect.Value, error) {
	c.mu.Lock()
	if inst, ok := c.instances[t]; ok {
		c.mu.Unlock()
		return inst, nil
	}
	c.mu.Unlock()

	inst, err := build()
	if err != nil {
		return reflect.Value{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.instances[t]; ok {
		return prev, nil
	}
	c.instances[t] = inst
	return inst, nil
}

// close closes every cached instance that implements io.Closer and marks the
// cache closed. Close order across entries is unspecified. A second call
// returns ErrAlreadyClosed.
func (c *instanceCache) close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.closed = true
	instances := make([]reflect.Value, 0, len(c.instances))
	for _, inst := range c.instances {
		instances = append(instances, inst)
	}
	c.mu.Unlock()

	var errs []error
	for _, inst := range instances {
		if closer, ok := inst.Interface().(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

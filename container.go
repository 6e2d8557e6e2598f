package larch

import (
	"reflect"
)

// Container is a resolution context: the root created by [New], or a scope
// created by [Container.CreateScope]. All contexts in one tree share a
// single registry and support the same operations; they differ only in
// where resolved instances are cached.
//
// Registration is expected to be single-threaded and to complete before
// concurrent resolution begins. Resolution itself is safe for concurrent
// use from multiple goroutines.
type Container interface {
	// Register adds a constructor to the shared registry. The constructor
	// must be a function with the signature func(deps...) T or
	// func(deps...) (T, error); dependencies are expressed as parameters and
	// resolved by type on each construction. The registration is stored
	// under T, replacing any previous registration for T.
	//
	// The returned handle selects the lifetime; the default is [Transient].
	Register(constructor interface{}) (*Registration, error)

	// RegisterFactory adds a zero-argument factory with the signature
	// func() T or func() (T, error). The factory is called directly on each
	// construction; no dependency resolution is performed.
	RegisterFactory(factory interface{}) (*Registration, error)

	// Resolve returns the value for the given type, constructing it (and
	// its dependencies, recursively) as dictated by the registration's
	// lifetime. An unregistered type yields [ErrUnregisteredType]. Prefer
	// the generic [Resolve] helper over calling this method directly.
	Resolve(t reflect.Type) (reflect.Value, error)

	// CreateScope returns a child context that shares this context's
	// registry and owns a fresh per-scope instance cache. Scopes nest
	// arbitrarily; [Singleton] instances are always cached at the tree's
	// root regardless of depth.
	CreateScope() Container

	// Close closes every instance cached directly in this context that
	// implements io.Closer, in unspecified order, and returns their errors
	// joined. Instances cached in ancestors or in other scopes are not
	// touched; a still-live child scope must be closed independently.
	// Calling Close twice returns [ErrAlreadyClosed].
	Close() error
}

// container implements Container for the root and for scopes alike: a scope
// is a container with a non-nil parent. The registry pointer is shared
// across the whole tree; the cache is owned per context.
type container struct {
	registry *registry
	parent   *container // nil at the root
	cache    *instanceCache
}

// New creates an empty root [Container] ready for registration.
func New() Container {
	return &container{
		registry: newRegistry(),
		cache:    newInstanceCache(),
	}
}

func (c *container) Register(constructor interface{}) (*Registration, error) {
	entry, err := newConstructorRegistration(constructor)
	if err != nil {
		return nil, err
	}
	c.registry.put(entry)
	return entry, nil
}

func (c *container) RegisterFactory(factory interface{}) (*Registration, error) {
	entry, err := newFactoryRegistration(factory)
	if err != nil {
		return nil, err
	}
	c.registry.put(entry)
	return entry, nil
}

func (c *container) Resolve(t reflect.Type) (reflect.Value, error) {
	return resolveType(c, t)
}

func (c *container) CreateScope() Container {
	return &container{
		registry: c.registry,
		parent:   c,
		cache:    newInstanceCache(),
	}
}

func (c *container) Close() error {
	return c.cache.close()
}

// resolveContext is the engine's view of a resolution context: the shared
// registry plus the two caches a lifetime can target.
type resolveContext interface {
	registryRef() *registry
	localCache() *instanceCache
	rootCache() *instanceCache
}

func (c *container) registryRef() *registry { return c.registry }

func (c *container) localCache() *instanceCache { return c.cache }

// rootCache walks up the parent chain; only the ultimate root accumulates
// singleton instances.
func (c *container) rootCache() *instanceCache {
	if c.parent == nil {
		return c.cache
	}
	return c.parent.rootCache()
}

// Package larch provides a lightweight, reflection-based inversion-of-control
// container for Go.
//
// Larch wires object graphs from constructor functions. Register constructors
// with the container, pick a lifetime for each registration, then retrieve
// fully-assembled values with [Resolve]. Construction is lazy: nothing is
// instantiated until the first matching Resolve call.
//
// # Quick Start
//
//	c := larch.New()
//	c.Register(NewLogger)
//	c.Register(NewDatabase)
//
//	db, err := larch.Resolve[*Database](c)
//
// # Lifetimes
//
// [Transient] (default) — a fresh instance on every [Container.Resolve] call.
//
// [Singleton] — one shared instance, cached at the root and returned to every
// scope in the tree:
//
//	c.Register(NewDatabase).AsSingleton()
//
// [PerScope] — one instance per resolution context; each scope created with
// [Container.CreateScope] caches its own:
//
//	c.Register(NewSession).PerScope()
//
// # Scopes
//
// A scope is a child resolution context. It shares the root's registry by
// reference, so registrations made anywhere in the tree are visible
// everywhere, but it owns its own per-scope instance cache:
//
//	s := c.CreateScope()
//	sess, _ := larch.Resolve[*Session](s)
//	defer s.Close()
//
// Closing a context closes the instances cached directly in it that
// implement [io.Closer]. Closing a scope never touches the root's or a
// sibling's instances.
//
// # Limitations
//
// The container performs no cycle detection. A dependency cycle among
// registered types causes unbounded recursion and exhausts the stack.
// Registration is expected to finish before concurrent resolution begins;
// registering and resolving the same type concurrently is unsupported.
package larch

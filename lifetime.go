package larch

// Lifetime controls how many instances of a registration the container
// creates and where they are cached.
type Lifetime int

const (
	// Transient is the default lifetime. A new instance is constructed on
	// every [Container.Resolve] call; nothing is cached.
	Transient Lifetime = iota

	// Singleton means the instance is constructed once, cached at the root
	// context, and returned to every Resolve call from any scope in the tree.
	Singleton

	// PerScope means each resolution context caches its own instance. Two
	// scopes resolving the same type get two distinct instances; repeated
	// resolves within one scope return the same one.
	PerScope
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	case PerScope:
		return "per-scope"
	default:
		return "unknown"
	}
}

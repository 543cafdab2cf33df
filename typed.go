package resguard

// Deleter is a cleanup policy for resources of type R.
type Deleter[R any] interface {
	Delete(R) error
}

// DeleterFunc adapts an ordinary function to the Deleter interface,
// following the same pattern as [net/http.HandlerFunc].
type DeleterFunc[R any] func(R) error

// Delete calls f(res).
func (f DeleterFunc[R]) Delete(res R) error {
	return f(res)
}

// Typed is a guard whose cleanup policy is part of its type: the zero value
// of D releases the resource. This makes a stateless deleter type usable
// without any wiring - Make takes only the resource value, and the zero
// Typed value is a non-owning guard whose Close is a no-op.
//
// The operations match those of Guard.
type Typed[R any, D Deleter[R]] struct {
	res    R
	del    D
	owning bool
}

// Make returns a guard owning res, with the zero value of D as its cleanup
// policy.
func Make[R any, D Deleter[R]](res R) *Typed[R, D] {
	return &Typed[R, D]{res: res, owning: true}
}

// MakeWith returns a guard owning res with an explicit, possibly stateful,
// cleanup policy.
func MakeWith[R any, D Deleter[R]](res R, del D) *Typed[R, D] {
	return &Typed[R, D]{res: res, del: del, owning: true}
}

// Get returns the held resource value without affecting ownership.
func (g *Typed[R, D]) Get() R {
	return g.res
}

// Valid reports whether the guard currently owns its resource.
func (g *Typed[R, D]) Valid() bool {
	return g.owning
}

// Release relinquishes ownership and returns the resource value without
// invoking the deleter.
func (g *Typed[R, D]) Release() R {
	g.owning = false
	return g.res
}

// Reset invokes the deleter on the held resource if the guard owns it and
// leaves the guard non-owning. Calling it again is a no-op.
func (g *Typed[R, D]) Reset() error {
	if !g.owning {
		return nil
	}
	g.owning = false
	return g.del.Delete(g.res)
}

// ResetTo releases the currently held resource as by Reset and then adopts
// res, leaving the guard owning the new value.
func (g *Typed[R, D]) ResetTo(res R) error {
	err := g.Reset()
	g.res = res
	g.owning = true
	return err
}

// Close releases the held resource as by Reset; satisfies [io.Closer].
func (g *Typed[R, D]) Close() error {
	return g.Reset()
}

// Move transfers ownership to a new guard and returns it, leaving the
// receiver non-owning.
func (g *Typed[R, D]) Move() *Typed[R, D] {
	m := &Typed[R, D]{res: g.res, del: g.del, owning: g.owning}
	g.owning = false
	return m
}

// Adopt transfers the resource and ownership from src into the receiver,
// leaving src non-owning. If the receiver owned a resource beforehand, that
// resource is released first and its cleanup error, if any, is returned.
func (g *Typed[R, D]) Adopt(src *Typed[R, D]) error {
	err := g.Reset()
	g.res = src.res
	g.del = src.del
	g.owning = src.owning
	src.owning = false
	return err
}

// Package resguard implements a generic "unique resource" guard:
// a resource value paired with the cleanup function that releases it.
// The cleanup is guaranteed to run exactly once per acquisition -
// usually from a deferred Close - no matter how the owning scope exits.
// Ownership may be relinquished with Release or handed off with Move,
// in which case the guard performs no cleanup at all.
package resguard

// Guard owns a resource value of type R together with the function that
// releases it. The zero value is a valid guard that owns nothing and whose
// Close is a no-op.
//
// A Guard is a plain single-threaded value; sharing one across goroutines
// requires external synchronization.
//
// Usage:
//
//	g := resguard.New(f, closeFile)
//	defer g.Close() // any exit path before Release releases the file
//	...
//	return g.Release() // on success, hand the file to the caller
type Guard[R any] struct {
	res     R
	cleanup func(R) error
	owning  bool
}

// New returns a guard owning res.
// The cleanup function is not invoked at construction time.
func New[R any](res R, cleanup func(R) error) *Guard[R] {
	return &Guard[R]{res: res, cleanup: cleanup, owning: true}
}

// NewChecked returns a guard holding res that owns it only if it differs from
// the provided "invalid" sentinel value.
// This allows wrapping the result of an acquisition that signals failure via a
// sentinel (empty path, -1 descriptor, nil pointer) before checking for the
// failure, without any risk of the sentinel being "cleaned up".
func NewChecked[R comparable](res, invalid R, cleanup func(R) error) *Guard[R] {
	return &Guard[R]{res: res, cleanup: cleanup, owning: res != invalid}
}

// Get returns the held resource value without affecting ownership.
func (g *Guard[R]) Get() R {
	return g.res
}

// Valid reports whether the guard currently owns its resource,
// i.e. whether Close would invoke the cleanup function.
func (g *Guard[R]) Valid() bool {
	return g.owning
}

// Release relinquishes ownership and returns the resource value.
// The cleanup function will not be invoked for this value by the guard;
// responsibility for releasing it passes to the caller.
func (g *Guard[R]) Release() R {
	g.owning = false
	return g.res
}

// Reset invokes the cleanup function on the held resource if the guard owns
// it and leaves the guard non-owning. Calling it again is a no-op.
// Ownership is spent even if the cleanup function fails;
// the error is returned unmodified.
func (g *Guard[R]) Reset() error {
	if !g.owning {
		return nil
	}
	g.owning = false
	if g.cleanup == nil {
		return nil
	}
	return g.cleanup(g.res)
}

// ResetTo releases the currently held resource as by Reset and then adopts
// res, leaving the guard owning the new value.
// The returned error is the cleanup error for the old value, if any;
// the new value is adopted either way.
func (g *Guard[R]) ResetTo(res R) error {
	err := g.Reset()
	g.res = res
	g.owning = true
	return err
}

// Close releases the held resource as by Reset.
// It exists to satisfy [io.Closer], making a deferred Close the natural way
// of scoping the resource's lifetime to the enclosing function.
func (g *Guard[R]) Close() error {
	return g.Reset()
}

// Move transfers ownership to a new guard and returns it.
// The receiver keeps its value but is left non-owning, so a deferred Close
// in the original scope remains correct after the handoff.
func (g *Guard[R]) Move() *Guard[R] {
	m := &Guard[R]{res: g.res, cleanup: g.cleanup, owning: g.owning}
	g.owning = false
	return m
}

// Adopt transfers the resource, cleanup function, and ownership from src into
// the receiver, leaving src non-owning. If the receiver owned a resource
// beforehand, that resource is released first; the returned error is the
// cleanup error for it, if any.
func (g *Guard[R]) Adopt(src *Guard[R]) error {
	err := g.Reset()
	g.res = src.res
	g.cleanup = src.cleanup
	g.owning = src.owning
	src.owning = false
	return err
}

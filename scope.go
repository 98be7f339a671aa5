// scope.go: scoped resource acquisition.
//
// Every helper here runs a resource's release step exactly once on every exit
// path of the guarded block, and combines failures with Suppress so that a
// release failure can never overwrite a failure already propagating from the
// block itself.
//
//	err := xgxscope.Acquire(func() (*os.File, error) { return os.Open(path) },
//		func(f *os.File) error {
//			_, err := io.Copy(dst, f)
//			return err
//		})
//
// For functions with a named error result, CloseInto is the defer form:
//
//	func save(path string) (err error) {
//		f, err := os.Create(path)
//		if err != nil {
//			return err
//		}
//		defer xgxscope.CloseInto(&err, f)
//		...
//	}
package xgxscope

import (
	"fmt"

	"github.com/google/uuid"
)

// Closer is a resource with a release step. io.Closer satisfies it.
type Closer interface {
	Close() error
}

// Use runs body with res and then releases res exactly once.
//
//	body    release  result
//	ok      ok       nil
//	ok      B        B
//	A       ok       A
//	A       B        A with Suppressed() == [B]
//
// If body panics, res is still released. A release failure during a panic is
// suppressed under the panic value (wrapped as a defect when it is not an
// error) and the combined failure is re-panicked. Under runtime.Goexit res is
// released but a release failure is discarded, since nothing can receive it.
// A nil interface resource is not released.
func Use[R Closer](res R, body func(R) error) (err error) {
	done := false
	defer func() {
		if Closer(res) == nil {
			return
		}
		cerr := res.Close()
		if !done {
			// Panicking or runtime.Goexit. Only intervene if release failed.
			if cerr == nil {
				return
			}
			p := recover()
			if p == nil {
				return
			}
			panic(Suppress(panicError(p), cerr))
		}
		err = Suppress(err, cerr)
	}()
	if body != nil {
		err = body(res)
	}
	done = true
	return err
}

// Acquire opens a resource and hands it to Use. When open fails, its failure
// is returned and neither body nor Close runs.
func Acquire[R Closer](open func() (R, error), body func(R) error) error {
	res, err := open()
	if err != nil {
		return err
	}
	return Use(res, body)
}

// CloseInto releases c and folds its failure into *errp with Suppress.
// Meant to be deferred in functions with a named error result.
func CloseInto(errp *error, c Closer) {
	if c == nil {
		return
	}
	cerr := c.Close()
	if errp == nil {
		return
	}
	*errp = Suppress(*errp, cerr)
}

func panicError(p any) error {
	if e, ok := p.(error); ok {
		return e
	}
	return Defect(fmt.Errorf("panic: %v", p))
}

// -----------------------------------------------------------------------------
// Group
// -----------------------------------------------------------------------------

// Group releases several resources as one scope. Resources are released in
// reverse acquisition order; the first release failure becomes the primary
// and later ones are suppressed under it. A Group is not safe for concurrent
// use.
type Group struct {
	id      uuid.UUID
	closers []Closer
	closed  bool
}

// NewGroup returns an empty Group with a fresh scope id.
func NewGroup() *Group {
	return &Group{id: uuid.New()}
}

// ID identifies the scope in failures returned by Close (field "scope_id").
func (g *Group) ID() string { return g.id.String() }

// Add registers c for release. Nil closers are ignored. Adding to a closed
// group releases c immediately and returns its failure.
func (g *Group) Add(c Closer) error {
	if c == nil {
		return nil
	}
	if g.closed {
		return c.Close()
	}
	g.closers = append(g.closers, c)
	return nil
}

// Close releases every registered resource in reverse order. Only the first
// call does any work.
func (g *Group) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	var err error
	for i := len(g.closers) - 1; i >= 0; i-- {
		err = Suppress(err, g.closers[i].Close())
	}
	g.closers = nil
	if err == nil {
		return nil
	}
	return With(err, "scope_id", g.ID())
}

// Run executes body and then closes the group with the same ordering rules
// as Use.
func (g *Group) Run(body func() error) error {
	return Use(g, func(*Group) error {
		if body == nil {
			return nil
		}
		return body()
	})
}

// Open acquires a resource with open and registers it with g. On failure the
// zero R is returned and nothing is registered.
func Open[R Closer](g *Group, open func() (R, error)) (R, error) {
	res, err := open()
	if err != nil {
		var zero R
		return zero, err
	}
	if err := g.Add(res); err != nil {
		var zero R
		return zero, err
	}
	return res, nil
}

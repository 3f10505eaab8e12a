package cache

import (
	"errors"
	"testing"
	"time"
)

type param int

func (p param) ID() int { return int(p) }

type vertex struct {
	id int
	x  float64
}

func (v *vertex) ID() int { return v.id }

// scaled multiplies the vertex state by every parameter ID.
type scaled struct {
	Base
	calls int
	value float64
}

func (s *scaled) Recompute() error {
	s.calls++
	v, err := s.Vertex()
	if err != nil {
		return err
	}
	x := v.(*vertex).x
	for _, p := range s.Parameters() {
		x *= float64(p.ID())
	}
	s.value = x
	return nil
}

type other struct {
	Base
	calls int
}

func (o *other) Recompute() error {
	o.calls++
	return nil
}

var errRecompute = errors.New("singular")

type failing struct {
	Base
	calls int
}

func (f *failing) Recompute() error {
	f.calls++
	return errRecompute
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.MustRegister("scaled", func() Cache { return &scaled{} })
	r.MustRegister("other", func() Cache { return &other{} })
	r.MustRegister("failing", func() Cache { return &failing{} })
	return r
}

func newTestContainer(t *testing.T, x float64, opts ...Option) *Container {
	t.Helper()
	opts = append([]Option{WithRegistry(newTestRegistry(t))}, opts...)
	return NewContainer(&vertex{id: 1, x: x}, opts...)
}

type recompute struct {
	key Key
	err error
}

// recordingObserver captures container events.
type recordingObserver struct {
	resolved    []bool
	recomputed  []recompute
	invalidated []int
}

func (r *recordingObserver) Resolved(_ Vertex, _ Key, created bool) {
	r.resolved = append(r.resolved, created)
}

func (r *recordingObserver) Recomputed(_ Vertex, key Key, _ time.Duration, err error) {
	r.recomputed = append(r.recomputed, recompute{key: key, err: err})
}

func (r *recordingObserver) Invalidated(_ Vertex, n int) {
	r.invalidated = append(r.invalidated, n)
}

package cache

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Parameter is an auxiliary value a cached computation depends on.
//
// Contract:
//   - Identity: ID must be stable for the parameter's lifetime and unique
//     within its parameter store. Keys treat equal IDs as the same object.
type Parameter interface {
	ID() int
}

// Key identifies a cache within a container: a kind tag plus the ordered
// parameters the computation depends on. The zero Key is valid and empty.
//
// Keys are immutable. Parameter order is significant, since it may encode
// argument position in the recomputation.
type Key struct {
	kind   string
	params []Parameter
}

// NewKey creates a key. The parameter slice is copied.
func NewKey(kind string, params ...Parameter) Key {
	return Key{kind: kind, params: slices.Clone(params)}
}

// Kind returns the cache kind tag.
func (k Key) Kind() string {
	return k.kind
}

// Parameters returns a copy of the key's parameters.
func (k Key) Parameters() []Parameter {
	return slices.Clone(k.params)
}

// Compare orders keys by kind, then by parameter IDs element-wise, with a
// shorter parameter list ordered before any list it is a prefix of.
// It returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.kind, other.kind); c != 0 {
		return c
	}
	return slices.CompareFunc(k.params, other.params, func(a, b Parameter) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}

// Less reports whether k orders before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// Equal reports whether k and other have the same kind and the same
// parameter sequence.
func (k Key) Equal(other Key) bool {
	return k.Compare(other) == 0
}

// String renders the key as kind[id,id,...].
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.kind)
	b.WriteByte('[')
	for i, p := range k.params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p.ID()))
	}
	b.WriteByte(']')
	return b.String()
}

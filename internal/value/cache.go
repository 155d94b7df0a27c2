package value

import "golang.org/x/exp/constraints"

// internCache holds one shared instance per payload in [0, len(values)).
// It is filled once on construction and only read afterwards.
type internCache[T constraints.Signed, V any] struct {
	values []V
}

func newInternCache[T constraints.Signed, V any](size T, build func(T) V) internCache[T, V] {
	values := make([]V, size)
	for i := T(0); i < size; i++ {
		values[i] = build(i)
	}
	return internCache[T, V]{values: values}
}

func (c internCache[T, V]) get(x T) (v V, ok bool) {
	if x < 0 || int64(x) >= int64(len(c.values)) {
		return v, false
	}
	return c.values[x], true
}

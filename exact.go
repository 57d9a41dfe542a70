package calc

// Exact pairs a value with whether it is known to be mathematically exact.
// Exactness only affects how values are rendered; approximate values are
// never rejected by computations.
type Exact[T any] struct {
	Value T
	Exact bool
}

func exactly[T any](v T) Exact[T] {
	return Exact[T]{Value: v, Exact: true}
}

func approx[T any](v T) Exact[T] {
	return Exact[T]{Value: v}
}

// mapExact applies an operation to an exact-tracked value. The result is
// exact iff the input is exact and the operation reports an exact result.
func mapExact[T, U any](x Exact[T], f func(T) (Exact[U], error)) (Exact[U], error) {
	r, err := f(x.Value)
	if err != nil {
		return Exact[U]{}, err
	}
	r.Exact = r.Exact && x.Exact
	return r, nil
}

// mapExact2 applies a binary operation to exact-tracked values. The result is
// exact iff both inputs are exact and the operation reports an exact result.
func mapExact2[T, U, V any](x Exact[T], y Exact[U], f func(T, U) (Exact[V], error)) (Exact[V], error) {
	r, err := f(x.Value, y.Value)
	if err != nil {
		return Exact[V]{}, err
	}
	r.Exact = r.Exact && x.Exact && y.Exact
	return r, nil
}

// makeApprox marks a value as inexact without changing it.
func (x Exact[T]) makeApprox() Exact[T] {
	x.Exact = false
	return x
}

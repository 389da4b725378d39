package fallback

// Origin records which path produced a response body.
type Origin string

const (
	OriginReal      Origin = "real"
	OriginSynthetic Origin = "synthetic"
)

// Result is either real upstream data or a synthetic stand-in with the same shape.
type Result[T any] struct {
	Origin Origin
	Data   T
	// Reason is non-nil only for synthetic results.
	Reason error
}

func Real[T any](data T) Result[T] {
	return Result[T]{Origin: OriginReal, Data: data}
}

func Synthetic[T any](data T, reason error) Result[T] {
	return Result[T]{Origin: OriginSynthetic, Data: data, Reason: reason}
}

func (r Result[T]) IsSynthetic() bool {
	return r.Origin == OriginSynthetic
}

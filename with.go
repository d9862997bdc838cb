package adapt

// Ref pairs a borrowed value with the adapter that encodes it. It lets
// generic code hand "a value together with its adapter" to a Sink, which
// only knows about Encodable.
type Ref[T any, A EncodeWith[T]] struct {
	V *T
}

var _ Encodable = Ref[int, Str[int]]{}

// EncodeTo encodes the referenced value with A.
func (r Ref[T, A]) EncodeTo(s Sink) error {
	var a A
	return a.EncodeWith(s, r.V)
}

// With pairs an owned value with its adapter. A Source decodes into a
// *With through DecodeFrom and the caller takes the value back with Unwrap.
type With[T any, A Adapter[T]] struct {
	value T
}

var (
	_ Encodable = With[int, Str[int]]{}
	_ Decodable = &With[int, Str[int]]{}
)

// Wrap pairs v with the adapter A.
func Wrap[T any, A Adapter[T]](v T) With[T, A] {
	return With[T, A]{value: v}
}

// Unwrap returns the wrapped value.
func (w With[T, A]) Unwrap() T {
	return w.value
}

// EncodeTo encodes the wrapped value with A.
func (w With[T, A]) EncodeTo(s Sink) error {
	var a A
	return a.EncodeWith(s, &w.value)
}

// DecodeFrom decodes a value with A and stores it in w.
func (w *With[T, A]) DecodeFrom(s Source) error {
	var a A
	v, err := a.DecodeWith(s)
	if err != nil {
		return err
	}
	w.value = v
	return nil
}

// decodeElem runs one element through the source's native decode, which
// hands it back to A through With.
func decodeElem[T any, A Adapter[T]](s Source) (T, error) {
	var w With[T, A]
	if err := s.DecodeValue(&w); err != nil {
		var zero T
		return zero, err
	}
	return w.Unwrap(), nil
}

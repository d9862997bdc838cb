// Package adapt provides composable encode/decode adapters.
//
// An adapter is a zero-size type used only as a type argument. It tells a
// host binding (see the encoders packages) how a value travels to and from
// the wire. Adapters nest: Seq[int, Str[int]] encodes a []int as a sequence
// of strings, and Seq[[]int, Seq[int, Str[int]]] does the same one level
// deeper. Everything is resolved by the compiler; there is no registry and
// no reflection on the adapter path.
//
//	data, err := adapt.Marshal[[]int, adapt.Seq[int, adapt.Str[int]]](json.New(), []int{3, 4})
//	// data == `["3","4"]`
//
// Defining an adapter means implementing EncodeWith and DecodeWith for the
// value types it supports, and adding the two forwarding functions the
// record helpers accept (see the Encode* and Decode* functions in shims.go).
package adapt

// EncodeWith is implemented by adapters able to encode a T. EncodeWith must
// not modify *v and must not keep s once it returns.
type EncodeWith[T any] interface {
	EncodeWith(s Sink, v *T) error
}

// DecodeWith is implemented by adapters able to decode a T. It consumes
// exactly the representation of one value.
type DecodeWith[T any] interface {
	DecodeWith(s Source) (T, error)
}

// Adapter is the full capability of an adapter for T.
type Adapter[T any] interface {
	EncodeWith[T]
	DecodeWith[T]
}

// EncodeFunc is the signature of an adapter's encode entry point.
type EncodeFunc[T any] func(s Sink, v T) error

// DecodeFunc is the signature of an adapter's decode entry point.
type DecodeFunc[T any] func(s Source) (T, error)

// Encode encodes v into s using the adapter A.
func Encode[T any, A EncodeWith[T]](s Sink, v T) error {
	var a A
	return a.EncodeWith(s, &v)
}

// Decode decodes a T from s using the adapter A.
func Decode[T any, A DecodeWith[T]](s Source) (T, error) {
	var a A
	return a.DecodeWith(s)
}

package adapt

// Id hands the value to the format's own machinery unchanged. It is the
// adapter to use for elements that need no customization.
type Id[T any] struct{}

var _ Adapter[string] = Id[string]{}

func (Id[T]) EncodeWith(s Sink, v *T) error {
	return s.EncodeValue(*v)
}

func (Id[T]) DecodeWith(s Source) (T, error) {
	var out T
	if err := s.DecodeValue(&out); err != nil {
		return out, err
	}
	return out, nil
}

// Bytes encodes a []byte as a native byte string rather than a sequence of
// numbers. Decoding also accepts text and sequences of small integers when
// the source supports them.
type Bytes struct{}

var _ Adapter[[]byte] = Bytes{}

func (Bytes) EncodeWith(s Sink, v *[]byte) error {
	return s.EncodeBytes(*v)
}

func (Bytes) DecodeWith(s Source) ([]byte, error) {
	return s.DecodeBytes()
}

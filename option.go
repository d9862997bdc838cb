package adapt

// Option encodes a *T: nil as the format's nil, anything else through A.
type Option[T any, A Adapter[T]] struct{}

var _ Adapter[*int] = Option[int, Str[int]]{}

func (Option[T, A]) EncodeWith(s Sink, v **T) error {
	if *v == nil {
		return s.EncodeNil()
	}
	return s.EncodeValue(Ref[T, A]{V: *v})
}

func (Option[T, A]) DecodeWith(s Source) (*T, error) {
	isNil, err := s.DecodeNil()
	if err != nil {
		return nil, err
	}
	if isNil {
		return nil, nil
	}
	v, err := decodeElem[T, A](s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

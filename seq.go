package adapt

// Seq encodes a []T as a sequence, each element going through A.
// A can be any adapter, including another Seq.
type Seq[T any, A Adapter[T]] struct{}

var (
	_ Adapter[[]int]   = Seq[int, Str[int]]{}
	_ Adapter[[][]int] = Seq[[]int, Seq[int, Str[int]]]{}
)

func (Seq[T, A]) EncodeWith(s Sink, v *[]T) error {
	xs := *v
	return s.EncodeSeq(len(xs), func(yield func(Encodable) bool) {
		for i := range xs {
			if !yield(Ref[T, A]{V: &xs[i]}) {
				return
			}
		}
	})
}

func (Seq[T, A]) DecodeWith(s Source) ([]T, error) {
	out := make([]T, 0)
	err := s.DecodeSeq(func(elem Source) error {
		v, err := decodeElem[T, A](elem)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

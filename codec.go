package adapt

import "golang.org/x/exp/constraints"

// Codec encodes with E and decodes with D.
type Codec[T any, E EncodeWith[T], D DecodeWith[T]] struct{}

var _ Adapter[int] = Codec[int, Str[int], Id[int]]{}

func (Codec[T, E, D]) EncodeWith(s Sink, v *T) error {
	var e E
	return e.EncodeWith(s, v)
}

func (Codec[T, E, D]) DecodeWith(s Source) (T, error) {
	var d D
	return d.DecodeWith(s)
}

// HumanOr uses H with human readable formats and C with compact ones.
type HumanOr[T any, H Adapter[T], C Adapter[T]] struct{}

var _ Adapter[[]byte] = HumanOr[[]byte, Id[[]byte], Bytes]{}

func (HumanOr[T, H, C]) EncodeWith(s Sink, v *T) error {
	if s.HumanReadable() {
		var h H
		return h.EncodeWith(s, v)
	}
	var c C
	return c.EncodeWith(s, v)
}

func (HumanOr[T, H, C]) DecodeWith(s Source) (T, error) {
	if s.HumanReadable() {
		var h H
		return h.DecodeWith(s)
	}
	var c C
	return c.DecodeWith(s)
}

// Converter converts between a value and its wire stand-in. From may reject
// values the stand-in can hold but T cannot.
type Converter[T, U any] interface {
	Into(v T) U
	From(u U) (T, error)
}

// Convert encodes a T by converting it to a U with C and encoding that U
// with A. Conversion failures on decode are reported through Custom.
type Convert[T, U any, C Converter[T, U], A Adapter[U]] struct{}

func (Convert[T, U, C, A]) EncodeWith(s Sink, v *T) error {
	var c C
	var a A
	u := c.Into(*v)
	return a.EncodeWith(s, &u)
}

func (Convert[T, U, C, A]) DecodeWith(s Source) (T, error) {
	var c C
	var a A
	u, err := a.DecodeWith(s)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := c.From(u)
	if err != nil {
		return v, s.Custom(err.Error())
	}
	return v, nil
}

// Folder combines an accumulator with one decoded element.
type Folder[T, Acc any] interface {
	Fold(acc Acc, v T) Acc
}

// Fold decodes a sequence of T, each element through A, and folds the
// elements into an Acc with F, starting from the zero Acc. The sequence is
// never collected. Fold only decodes.
type Fold[T, Acc any, A Adapter[T], F Folder[T, Acc]] struct{}

var _ DecodeWith[int] = Fold[int, int, Str[int], Add[int]]{}

func (Fold[T, Acc, A, F]) DecodeWith(s Source) (Acc, error) {
	var f F
	var acc Acc
	err := s.DecodeSeq(func(elem Source) error {
		v, err := decodeElem[T, A](elem)
		if err != nil {
			return err
		}
		acc = f.Fold(acc, v)
		return nil
	})
	if err != nil {
		var zero Acc
		return zero, err
	}
	return acc, nil
}

// Number is the set of kinds Add can add up.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add folds numbers into their sum.
type Add[T Number] struct{}

func (Add[T]) Fold(acc, v T) T { return acc + v }

// Sum decodes a sequence of T, each element through A, into the sum of
// its elements.
type Sum[T Number, A Adapter[T]] struct{}

var _ DecodeWith[int] = Sum[int, Str[int]]{}

func (Sum[T, A]) DecodeWith(s Source) (T, error) {
	return Fold[T, T, A, Add[T]]{}.DecodeWith(s)
}

package adapt

import "fmt"

// Pair is an ordered couple of values, encoded by Tuple as a two element
// sequence and by SeqAsMap as a map entry.
type Pair[K, V any] struct {
	First  K
	Second V
}

// Tuple encodes a Pair as a sequence of exactly two elements, the first
// through A1 and the second through A2.
type Tuple[T1, T2 any, A1 Adapter[T1], A2 Adapter[T2]] struct{}

var _ Adapter[Pair[string, int]] = Tuple[string, int, Id[string], Str[int]]{}

func (Tuple[T1, T2, A1, A2]) EncodeWith(s Sink, v *Pair[T1, T2]) error {
	return s.EncodeSeq(2, func(yield func(Encodable) bool) {
		if !yield(Ref[T1, A1]{V: &v.First}) {
			return
		}
		yield(Ref[T2, A2]{V: &v.Second})
	})
}

func (Tuple[T1, T2, A1, A2]) DecodeWith(s Source) (Pair[T1, T2], error) {
	var out Pair[T1, T2]
	n := 0
	err := s.DecodeSeq(func(elem Source) error {
		var err error
		switch n {
		case 0:
			out.First, err = decodeElem[T1, A1](elem)
		case 1:
			out.Second, err = decodeElem[T2, A2](elem)
		default:
			return s.Custom("invalid length, expected 2 elements")
		}
		n++
		return err
	})
	if err != nil {
		return out, err
	}
	if n != 2 {
		return out, s.Custom(fmt.Sprintf("invalid length %d, expected 2", n))
	}
	return out, nil
}

// Map encodes a map[K]V as a map, keys through KA and values through VA.
// Entries are written in Go's map iteration order.
type Map[K comparable, V any, KA Adapter[K], VA Adapter[V]] struct{}

var _ Adapter[map[int]string] = Map[int, string, Str[int], Id[string]]{}

func (Map[K, V, KA, VA]) EncodeWith(s Sink, v *map[K]V) error {
	m := *v
	return s.EncodeMap(len(m), func(yield func(Encodable, Encodable) bool) {
		for k, val := range m {
			if !yield(Ref[K, KA]{V: &k}, Ref[V, VA]{V: &val}) {
				return
			}
		}
	})
}

func (Map[K, V, KA, VA]) DecodeWith(s Source) (map[K]V, error) {
	out := make(map[K]V)
	err := s.DecodeMap(func(key, value Source) error {
		k, err := decodeElem[K, KA](key)
		if err != nil {
			return err
		}
		val, err := decodeElem[V, VA](value)
		if err != nil {
			return err
		}
		out[k] = val
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MapAsSeq encodes a map[K]V as a sequence of [key, value] tuples. It is
// useful for formats that only accept string keys.
type MapAsSeq[K comparable, V any, KA Adapter[K], VA Adapter[V]] struct{}

var _ Adapter[map[int]string] = MapAsSeq[int, string, Id[int], Id[string]]{}

func (MapAsSeq[K, V, KA, VA]) EncodeWith(s Sink, v *map[K]V) error {
	m := *v
	return s.EncodeSeq(len(m), func(yield func(Encodable) bool) {
		for k, val := range m {
			if !yield(Wrap[Pair[K, V], Tuple[K, V, KA, VA]](Pair[K, V]{First: k, Second: val})) {
				return
			}
		}
	})
}

func (MapAsSeq[K, V, KA, VA]) DecodeWith(s Source) (map[K]V, error) {
	pairs, err := Seq[Pair[K, V], Tuple[K, V, KA, VA]]{}.DecodeWith(s)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out, nil
}

// SeqAsMap encodes a []Pair[K, V] as a map, keeping the slice order on
// both encode and decode.
type SeqAsMap[K, V any, KA Adapter[K], VA Adapter[V]] struct{}

var _ Adapter[[]Pair[string, int]] = SeqAsMap[string, int, Id[string], Id[int]]{}

func (SeqAsMap[K, V, KA, VA]) EncodeWith(s Sink, v *[]Pair[K, V]) error {
	pairs := *v
	return s.EncodeMap(len(pairs), func(yield func(Encodable, Encodable) bool) {
		for i := range pairs {
			if !yield(Ref[K, KA]{V: &pairs[i].First}, Ref[V, VA]{V: &pairs[i].Second}) {
				return
			}
		}
	})
}

func (SeqAsMap[K, V, KA, VA]) DecodeWith(s Source) ([]Pair[K, V], error) {
	out := make([]Pair[K, V], 0)
	err := s.DecodeMap(func(key, value Source) error {
		var p Pair[K, V]
		var err error
		if p.First, err = decodeElem[K, KA](key); err != nil {
			return err
		}
		if p.Second, err = decodeElem[V, VA](value); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

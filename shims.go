package adapt

// Entry points for every adapter in this package. Each one forwards to the
// adapter's EncodeWith or DecodeWith and matches EncodeFunc or DecodeFunc,
// so it can be given to Field and Into.

func EncodeStr[T Textual](s Sink, v T) error   { return Str[T]{}.EncodeWith(s, &v) }
func DecodeStr[T Textual](s Source) (T, error) { return Str[T]{}.DecodeWith(s) }
func EncodeText[T any, PT TextCodec[T]](s Sink, v T) error {
	return Text[T, PT]{}.EncodeWith(s, &v)
}
func DecodeText[T any, PT TextCodec[T]](s Source) (T, error) {
	return Text[T, PT]{}.DecodeWith(s)
}

func EncodeSeq[T any, A Adapter[T]](s Sink, v []T) error   { return Seq[T, A]{}.EncodeWith(s, &v) }
func DecodeSeq[T any, A Adapter[T]](s Source) ([]T, error) { return Seq[T, A]{}.DecodeWith(s) }

func EncodeId[T any](s Sink, v T) error   { return Id[T]{}.EncodeWith(s, &v) }
func DecodeId[T any](s Source) (T, error) { return Id[T]{}.DecodeWith(s) }

func EncodeBytes(s Sink, v []byte) error   { return Bytes{}.EncodeWith(s, &v) }
func DecodeBytes(s Source) ([]byte, error) { return Bytes{}.DecodeWith(s) }

func EncodeOption[T any, A Adapter[T]](s Sink, v *T) error   { return Option[T, A]{}.EncodeWith(s, &v) }
func DecodeOption[T any, A Adapter[T]](s Source) (*T, error) { return Option[T, A]{}.DecodeWith(s) }

func EncodeTuple[T1, T2 any, A1 Adapter[T1], A2 Adapter[T2]](s Sink, v Pair[T1, T2]) error {
	return Tuple[T1, T2, A1, A2]{}.EncodeWith(s, &v)
}
func DecodeTuple[T1, T2 any, A1 Adapter[T1], A2 Adapter[T2]](s Source) (Pair[T1, T2], error) {
	return Tuple[T1, T2, A1, A2]{}.DecodeWith(s)
}

func EncodeMap[K comparable, V any, KA Adapter[K], VA Adapter[V]](s Sink, v map[K]V) error {
	return Map[K, V, KA, VA]{}.EncodeWith(s, &v)
}
func DecodeMap[K comparable, V any, KA Adapter[K], VA Adapter[V]](s Source) (map[K]V, error) {
	return Map[K, V, KA, VA]{}.DecodeWith(s)
}

func EncodeMapAsSeq[K comparable, V any, KA Adapter[K], VA Adapter[V]](s Sink, v map[K]V) error {
	return MapAsSeq[K, V, KA, VA]{}.EncodeWith(s, &v)
}
func DecodeMapAsSeq[K comparable, V any, KA Adapter[K], VA Adapter[V]](s Source) (map[K]V, error) {
	return MapAsSeq[K, V, KA, VA]{}.DecodeWith(s)
}

func EncodeSeqAsMap[K, V any, KA Adapter[K], VA Adapter[V]](s Sink, v []Pair[K, V]) error {
	return SeqAsMap[K, V, KA, VA]{}.EncodeWith(s, &v)
}
func DecodeSeqAsMap[K, V any, KA Adapter[K], VA Adapter[V]](s Source) ([]Pair[K, V], error) {
	return SeqAsMap[K, V, KA, VA]{}.DecodeWith(s)
}

func EncodeCodec[T any, E EncodeWith[T], D DecodeWith[T]](s Sink, v T) error {
	return Codec[T, E, D]{}.EncodeWith(s, &v)
}
func DecodeCodec[T any, E EncodeWith[T], D DecodeWith[T]](s Source) (T, error) {
	return Codec[T, E, D]{}.DecodeWith(s)
}

func EncodeHumanOr[T any, H Adapter[T], C Adapter[T]](s Sink, v T) error {
	return HumanOr[T, H, C]{}.EncodeWith(s, &v)
}
func DecodeHumanOr[T any, H Adapter[T], C Adapter[T]](s Source) (T, error) {
	return HumanOr[T, H, C]{}.DecodeWith(s)
}

func EncodeConvert[T, U any, C Converter[T, U], A Adapter[U]](s Sink, v T) error {
	return Convert[T, U, C, A]{}.EncodeWith(s, &v)
}
func DecodeConvert[T, U any, C Converter[T, U], A Adapter[U]](s Source) (T, error) {
	return Convert[T, U, C, A]{}.DecodeWith(s)
}

func DecodeFold[T, Acc any, A Adapter[T], F Folder[T, Acc]](s Source) (Acc, error) {
	return Fold[T, Acc, A, F]{}.DecodeWith(s)
}
func DecodeSum[T Number, A Adapter[T]](s Source) (T, error) { return Sum[T, A]{}.DecodeWith(s) }

package adapt

import "iter"

// Encodable is the native encode contract of the host framework. Sinks
// dispatch to EncodeTo when they are asked to encode a value implementing it.
type Encodable interface {
	EncodeTo(s Sink) error
}

// Decodable is the native decode contract of the host framework. Sources
// dispatch to DecodeFrom when they are asked to decode into a pointer
// implementing it.
type Decodable interface {
	DecodeFrom(s Source) error
}

// Sink is the serializer side of a host binding. A Sink is only valid for
// the duration of the call that received it.
type Sink interface {
	// HumanReadable reports whether the format is meant to be read by people.
	HumanReadable() bool

	EncodeNil() error
	EncodeBool(v bool) error
	EncodeInt(v int64) error
	EncodeUint(v uint64) error
	EncodeFloat(v float64) error
	EncodeString(v string) error
	EncodeBytes(v []byte) error

	// EncodeSeq encodes exactly n elements pulled from elems.
	EncodeSeq(n int, elems iter.Seq[Encodable]) error

	// EncodeMap encodes exactly n key/value entries pulled from entries.
	EncodeMap(n int, entries iter.Seq2[Encodable, Encodable]) error

	// EncodeStruct encodes a record of n named fields.
	EncodeStruct(n int, fields iter.Seq2[string, Encodable]) error

	// EncodeValue encodes v with the format's own machinery. Values
	// implementing Encodable are handed their sink instead.
	EncodeValue(v any) error
}

// Source is the deserializer side of a host binding. A Source is only valid
// for the duration of the call that received it.
type Source interface {
	HumanReadable() bool

	// DecodeNil consumes a nil and returns true. When the next value is not
	// nil nothing is consumed.
	DecodeNil() (bool, error)
	DecodeBool() (bool, error)
	DecodeInt() (int64, error)
	DecodeUint() (uint64, error)
	DecodeFloat() (float64, error)
	DecodeString() (string, error)
	DecodeBytes() ([]byte, error)

	// DecodeSeq calls fn once per element. fn must consume exactly one
	// value from elem. The first error returned by fn is returned as is.
	DecodeSeq(fn func(elem Source) error) error

	// DecodeMap calls fn once per entry. The key must be consumed before
	// the value.
	DecodeMap(fn func(key, value Source) error) error

	// DecodeStruct calls fn once per field of a record.
	DecodeStruct(fn func(field string, value Source) error) error

	// DecodeValue decodes into the pointer v with the format's own machinery.
	// Pointers implementing Decodable are handed their source instead.
	DecodeValue(v any) error

	// Skip consumes one value of any shape.
	Skip() error

	// Custom builds an error carrying msg and the current location.
	Custom(msg string) error
}

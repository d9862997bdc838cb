// Package msgpack provides a MessagePack binding for adapt.
// MessagePack is a binary format that is faster and more compact than JSON.
// The Sink and Source stream directly over msgpack's Encoder and Decoder,
// and report themselves as not human readable.
package msgpack

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/RobertWHurst/adapt"
)

// Encoder implements adapt.Encoder using MessagePack binary serialization.
// Values that are neither adapt.Encodable nor adapt.Decodable go through
// msgpack's own reflection.
type Encoder struct{}

var _ adapt.Encoder = &Encoder{}

// Encode serializes v to MessagePack bytes.
func (e *Encoder) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewSink(msgpack.NewEncoder(&buf)).EncodeValue(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes MessagePack bytes into v. Bytes left over after the
// value are an error.
func (d *Encoder) Decode(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := NewSource(dec).DecodeValue(v); err != nil {
		return err
	}
	if _, err := dec.PeekCode(); err != io.EOF {
		return errors.New("msgpack: trailing data after value")
	}
	return nil
}

// New creates a new MessagePack encoder.
func New() *Encoder {
	return &Encoder{}
}

// Field holds a struct field encoded with the adapter A. It lets plain
// structs passed to msgpack.Marshal pick an adapter per field:
//
//	type Foo struct {
//		Xs msgpack.Field[[]int, adapt.Seq[int, adapt.Str[int]]] `msgpack:"xs"`
//	}
type Field[T any, A adapt.Adapter[T]] struct {
	Value T
}

var (
	_ msgpack.CustomEncoder = Field[int, adapt.Str[int]]{}
	_ msgpack.CustomDecoder = &Field[int, adapt.Str[int]]{}
)

func (f Field[T, A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return adapt.Encode[T, A](NewSink(enc), f.Value)
}

func (f *Field[T, A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := adapt.Decode[T, A](NewSource(dec))
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

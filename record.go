package adapt

import "fmt"

// FieldValue is a named field ready to be encoded by EncodeRecord.
type FieldValue struct {
	Name  string
	Value Encodable
}

// Field builds a FieldValue encoding v with enc, which is usually one of
// the adapter entry points such as EncodeStr[int].
func Field[T any](name string, enc EncodeFunc[T], v T) FieldValue {
	return FieldValue{Name: name, Value: encodeFunc[T]{fn: enc, v: v}}
}

// EncodeRecord encodes fields, in order, as a record.
func EncodeRecord(s Sink, fields ...FieldValue) error {
	return s.EncodeStruct(len(fields), func(yield func(string, Encodable) bool) {
		for _, f := range fields {
			if !yield(f.Name, f.Value) {
				return
			}
		}
	})
}

// FieldTarget is a named destination filled by DecodeRecord.
type FieldTarget struct {
	Name   string
	Target Decodable
}

// Into builds a FieldTarget decoding the field name with dec into dst.
func Into[T any](name string, dec DecodeFunc[T], dst *T) FieldTarget {
	return FieldTarget{Name: name, Target: &decodeFunc[T]{fn: dec, dst: dst}}
}

// DecodeRecord decodes a record into targets. Unknown fields are skipped;
// a target whose field is absent fails the decode.
func DecodeRecord(s Source, targets ...FieldTarget) error {
	seen := make([]bool, len(targets))
	err := s.DecodeStruct(func(field string, value Source) error {
		for i, t := range targets {
			if t.Name == field {
				if seen[i] {
					return value.Custom(fmt.Sprintf("duplicate field %q", field))
				}
				seen[i] = true
				return value.DecodeValue(t.Target)
			}
		}
		return value.Skip()
	})
	if err != nil {
		return err
	}
	for i, t := range targets {
		if !seen[i] {
			return s.Custom(fmt.Sprintf("missing field %q", t.Name))
		}
	}
	return nil
}

type encodeFunc[T any] struct {
	fn EncodeFunc[T]
	v  T
}

func (e encodeFunc[T]) EncodeTo(s Sink) error {
	return e.fn(s, e.v)
}

type decodeFunc[T any] struct {
	fn  DecodeFunc[T]
	dst *T
}

func (d *decodeFunc[T]) DecodeFrom(s Source) error {
	v, err := d.fn(s)
	if err != nil {
		return err
	}
	*d.dst = v
	return nil
}

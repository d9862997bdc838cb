package msgpack

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/RobertWHurst/adapt"
)

// Sink writes straight to a msgpack.Encoder.
type Sink struct {
	enc *msgpack.Encoder
}

var _ adapt.Sink = &Sink{}

// NewSink creates a sink writing to enc.
func NewSink(enc *msgpack.Encoder) *Sink {
	return &Sink{enc: enc}
}

func (s *Sink) HumanReadable() bool { return false }

func (s *Sink) EncodeNil() error            { return s.enc.EncodeNil() }
func (s *Sink) EncodeBool(v bool) error     { return s.enc.EncodeBool(v) }
func (s *Sink) EncodeInt(v int64) error     { return s.enc.EncodeInt(v) }
func (s *Sink) EncodeUint(v uint64) error   { return s.enc.EncodeUint(v) }
func (s *Sink) EncodeFloat(v float64) error { return s.enc.EncodeFloat64(v) }
func (s *Sink) EncodeString(v string) error { return s.enc.EncodeString(v) }
func (s *Sink) EncodeBytes(v []byte) error  { return s.enc.EncodeBytes(v) }

func (s *Sink) EncodeSeq(n int, elems iter.Seq[adapt.Encodable]) error {
	if err := s.enc.EncodeArrayLen(n); err != nil {
		return err
	}
	count := 0
	for e := range elems {
		if count == n {
			return checkLen("sequence", n, n+1)
		}
		if err := s.EncodeValue(e); err != nil {
			return err
		}
		count++
	}
	return checkLen("sequence", n, count)
}

func (s *Sink) EncodeMap(n int, entries iter.Seq2[adapt.Encodable, adapt.Encodable]) error {
	if err := s.enc.EncodeMapLen(n); err != nil {
		return err
	}
	count := 0
	for k, v := range entries {
		if count == n {
			return checkLen("map", n, n+1)
		}
		if err := s.EncodeValue(k); err != nil {
			return err
		}
		if err := s.EncodeValue(v); err != nil {
			return err
		}
		count++
	}
	return checkLen("map", n, count)
}

func (s *Sink) EncodeStruct(n int, fields iter.Seq2[string, adapt.Encodable]) error {
	if err := s.enc.EncodeMapLen(n); err != nil {
		return err
	}
	count := 0
	for name, v := range fields {
		if count == n {
			return checkLen("struct", n, n+1)
		}
		if err := s.enc.EncodeString(name); err != nil {
			return err
		}
		if err := s.EncodeValue(v); err != nil {
			return err
		}
		count++
	}
	return checkLen("struct", n, count)
}

// EncodeValue encodes Encodable values through their own EncodeTo and
// anything else with msgpack's reflection.
func (s *Sink) EncodeValue(v any) error {
	if e, ok := v.(adapt.Encodable); ok {
		return e.EncodeTo(s)
	}
	return s.enc.Encode(v)
}

func checkLen(kind string, declared, got int) error {
	if declared != got {
		return errors.Errorf("msgpack: %s declared %d elements, got %d", kind, declared, got)
	}
	return nil
}

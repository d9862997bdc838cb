package msgpack

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/RobertWHurst/adapt"
)

// Source reads straight from a msgpack.Decoder. It keeps the path of the
// value being decoded for the errors built by Custom.
type Source struct {
	dec  *msgpack.Decoder
	path string
}

var _ adapt.Source = &Source{}

// NewSource creates a source reading from dec.
func NewSource(dec *msgpack.Decoder) *Source {
	return &Source{dec: dec}
}

func (s *Source) at(path string) *Source {
	return &Source{dec: s.dec, path: path}
}

func (s *Source) HumanReadable() bool { return false }

func (s *Source) DecodeNil() (bool, error) {
	c, err := s.dec.PeekCode()
	if err != nil {
		return false, err
	}
	if c != msgpcode.Nil {
		return false, nil
	}
	return true, s.dec.DecodeNil()
}

func (s *Source) DecodeBool() (bool, error)     { return s.dec.DecodeBool() }
func (s *Source) DecodeInt() (int64, error)     { return s.dec.DecodeInt64() }
func (s *Source) DecodeUint() (uint64, error)   { return s.dec.DecodeUint64() }
func (s *Source) DecodeFloat() (float64, error) { return s.dec.DecodeFloat64() }
func (s *Source) DecodeString() (string, error) { return s.dec.DecodeString() }

// DecodeBytes accepts binary and string values, and arrays of small
// integers.
func (s *Source) DecodeBytes() ([]byte, error) {
	c, err := s.dec.PeekCode()
	if err != nil {
		return nil, err
	}
	if !msgpcode.IsFixedArray(c) && c != msgpcode.Array16 && c != msgpcode.Array32 {
		return s.dec.DecodeBytes()
	}
	out := make([]byte, 0)
	err = s.DecodeSeq(func(elem adapt.Source) error {
		n, err := elem.DecodeUint()
		if err != nil {
			return err
		}
		if n > 0xff {
			return errors.Errorf("msgpack: %d overflows a byte", n)
		}
		out = append(out, byte(n))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) DecodeSeq(fn func(elem adapt.Source) error) error {
	n, err := s.dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n == -1 {
		return errors.New("msgpack: invalid nil, expected array")
	}
	for i := 0; i < n; i++ {
		if err := fn(s.at(fmt.Sprintf("%s[%d]", s.path, i))); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) DecodeMap(fn func(key, value adapt.Source) error) error {
	n, err := s.dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n == -1 {
		return errors.New("msgpack: invalid nil, expected map")
	}
	for i := 0; i < n; i++ {
		path := fmt.Sprintf("%s{%d}", s.path, i)
		if err := fn(s.at(path), s.at(path)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) DecodeStruct(fn func(field string, value adapt.Source) error) error {
	n, err := s.dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n == -1 {
		return errors.New("msgpack: invalid nil, expected map")
	}
	for i := 0; i < n; i++ {
		name, err := s.dec.DecodeString()
		if err != nil {
			return err
		}
		path := name
		if s.path != "" {
			path = s.path + "." + name
		}
		if err := fn(name, s.at(path)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeValue hands Decodable pointers this source and decodes anything
// else with msgpack's reflection.
func (s *Source) DecodeValue(v any) error {
	if d, ok := v.(adapt.Decodable); ok {
		return d.DecodeFrom(s)
	}
	return s.dec.Decode(v)
}

func (s *Source) Skip() error {
	return s.dec.Skip()
}

func (s *Source) Custom(msg string) error {
	return &adapt.CustomError{Msg: msg, Path: s.path}
}

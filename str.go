package adapt

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Textual is the set of value kinds Str can render to and parse from text.
type Textual interface {
	constraints.Integer | constraints.Float | ~bool | ~string
}

// Str encodes a value as its canonical text and parses it back on decode.
//
//	Seq[int, Str[int]] encodes []int{3, 4} as ["3", "4"].
type Str[T Textual] struct{}

var _ Adapter[int] = Str[int]{}

func (Str[T]) EncodeWith(s Sink, v *T) error {
	return s.EncodeString(formatText(reflect.ValueOf(*v)))
}

func (Str[T]) DecodeWith(s Source) (T, error) {
	var out T
	text, err := s.DecodeString()
	if err != nil {
		return out, err
	}
	if err := parseText(reflect.ValueOf(&out).Elem(), text); err != nil {
		return out, s.Custom(err.Error())
	}
	return out, nil
}

func formatText(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	default:
		return rv.String()
	}
}

func parseText(rv reflect.Value, text string) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return textError(text, rv.Type(), err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return textError(text, rv.Type(), err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return textError(text, rv.Type(), err)
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return textError(text, rv.Type(), err)
		}
		rv.SetBool(b)
	default:
		rv.SetString(text)
	}
	return nil
}

func textError(text string, t reflect.Type, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return fmt.Errorf("invalid %s %q: %v", t, text, err)
}

// TextCodec is satisfied by pointers to types that marshal to and from
// text, such as *time.Time, *netip.Addr or *big.Int.
type TextCodec[T any] interface {
	*T
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// Text encodes a value through its MarshalText and UnmarshalText methods.
type Text[T any, PT TextCodec[T]] struct{}

func (Text[T, PT]) EncodeWith(s Sink, v *T) error {
	text, err := PT(v).MarshalText()
	if err != nil {
		return err
	}
	return s.EncodeString(string(text))
}

func (Text[T, PT]) DecodeWith(s Source) (T, error) {
	var out T
	text, err := s.DecodeString()
	if err != nil {
		return out, err
	}
	if err := PT(&out).UnmarshalText([]byte(text)); err != nil {
		return out, s.Custom(err.Error())
	}
	return out, nil
}

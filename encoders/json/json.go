// Package json provides a JSON binding for adapt.
// Adapted values are built as a value tree and written with json-iterator,
// which also handles any value that is not adapted.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/value"
)

// api keeps numbers as json.Number so that integers survive decoding into
// a tree without a detour through float64.
var api = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Options are the tree options used for JSON. Native structs are read and
// written with their json tags.
var Options = value.Options{TagName: "json"}

// Encoder implements adapt.Encoder using JSON serialization.
// It provides human-readable message encoding that works well for
// debugging and cross-platform compatibility.
type Encoder struct{}

var _ adapt.Encoder = &Encoder{}

// Encode serializes v to JSON bytes.
func (e *Encoder) Encode(v any) ([]byte, error) {
	if _, ok := v.(adapt.Encodable); !ok {
		return api.Marshal(v)
	}
	tree, err := value.Encode(v, Options)
	if err != nil {
		return nil, err
	}
	return api.Marshal(tree)
}

// Decode deserializes JSON bytes into v.
func (d *Encoder) Decode(data []byte, v any) error {
	if _, ok := v.(adapt.Decodable); !ok {
		return api.Unmarshal(data, v)
	}
	var tree any
	if err := api.Unmarshal(data, &tree); err != nil {
		return err
	}
	return value.Decode(tree, v, Options)
}

// New creates a new JSON encoder.
func New() *Encoder {
	return &Encoder{}
}

// Field holds a struct field encoded with the adapter A when the struct is
// marshaled with encoding/json or json-iterator.
//
//	type Foo struct {
//		Xs json.Field[[]int, adapt.Seq[int, adapt.Str[int]]] `json:"xs"`
//	}
type Field[T any, A adapt.Adapter[T]] struct {
	Value T
}

func (f Field[T, A]) MarshalJSON() ([]byte, error) {
	return adapt.Marshal[T, A](New(), f.Value)
}

func (f *Field[T, A]) UnmarshalJSON(data []byte) error {
	v, err := adapt.Unmarshal[T, A](New(), data)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

// Package yaml provides a YAML binding for adapt built on gopkg.in/yaml.v3.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/value"
)

// Options are the tree options used for YAML. Native structs are read and
// written with their yaml tags.
var Options = value.Options{TagName: "yaml"}

// Encoder implements adapt.Encoder using YAML serialization.
type Encoder struct{}

var _ adapt.Encoder = &Encoder{}

// Encode serializes v to YAML bytes.
func (e *Encoder) Encode(v any) ([]byte, error) {
	if _, ok := v.(adapt.Encodable); !ok {
		return yaml.Marshal(v)
	}
	tree, err := value.Encode(v, Options)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

// Decode deserializes YAML bytes into v.
func (d *Encoder) Decode(data []byte, v any) error {
	if _, ok := v.(adapt.Decodable); !ok {
		return yaml.Unmarshal(data, v)
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}
	return value.Decode(tree, v, Options)
}

// New creates a new YAML encoder.
func New() *Encoder {
	return &Encoder{}
}

// Field holds a struct field encoded with the adapter A when the struct is
// marshaled with yaml.v3.
type Field[T any, A adapt.Adapter[T]] struct {
	Value T
}

var (
	_ yaml.Marshaler   = Field[int, adapt.Str[int]]{}
	_ yaml.Unmarshaler = &Field[int, adapt.Str[int]]{}
)

func (f Field[T, A]) MarshalYAML() (any, error) {
	return value.Encode(adapt.Ref[T, A]{V: &f.Value}, Options)
}

func (f *Field[T, A]) UnmarshalYAML(node *yaml.Node) error {
	var tree any
	if err := node.Decode(&tree); err != nil {
		return err
	}
	var w adapt.With[T, A]
	if err := value.Decode(tree, &w, Options); err != nil {
		return err
	}
	f.Value = w.Unwrap()
	return nil
}

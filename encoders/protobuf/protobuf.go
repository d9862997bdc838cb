// Package protobuf provides a Protocol Buffers binding for adapt.
// Messages are encoded as is. Adapted values are built as a value tree and
// carried in a google.protobuf.Value, so numbers travel as doubles.
package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/value"
)

// Options are the tree options used for protobuf values.
var Options = value.DefaultOptions

type Encoder struct{}

var _ adapt.Encoder = &Encoder{}

func (e *Encoder) Encode(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return proto.Marshal(m)
	}
	if _, ok := v.(adapt.Encodable); ok {
		pv, err := ToValue(v)
		if err != nil {
			return nil, err
		}
		return proto.Marshal(pv)
	}
	return nil, fmt.Errorf("v must implement proto.Message or adapt.Encodable")
}

func (e *Encoder) Decode(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, m)
	}
	if _, ok := v.(adapt.Decodable); ok {
		pv := &structpb.Value{}
		if err := proto.Unmarshal(data, pv); err != nil {
			return err
		}
		return FromValue(pv, v)
	}
	return fmt.Errorf("v must implement proto.Message or adapt.Decodable")
}

func New() *Encoder {
	return &Encoder{}
}

// ToValue encodes v into a structpb.Value.
func ToValue(v any) (*structpb.Value, error) {
	tree, err := value.Encode(v, Options)
	if err != nil {
		return nil, err
	}
	return structpb.NewValue(tree)
}

// FromValue decodes pv into the pointer v.
func FromValue(pv *structpb.Value, v any) error {
	return value.Decode(pv.AsInterface(), v, Options)
}

// Package value implements an in-memory host binding. A Sink builds a
// tree of plain Go values (map[string]any, []any, string, int64, uint64,
// float64, bool and nil) and a Source reads one back. Text formats such as
// JSON, YAML and protobuf's structpb encode the tree with their own
// libraries.
//
// Trees are human readable: byte strings are stored as standard base64
// text and map keys are always strings. Native structs, json.Marshaler and
// encoding.TextMarshaler values are lowered the way encoding/json writes
// them, reading the struct tag named by Options.
package value

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"iter"
	"reflect"
	"strconv"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/RobertWHurst/adapt"
)

// Options tune how native Go values are turned into trees and back.
type Options struct {
	// TagName is the struct tag consulted for native structs.
	TagName string
}

// DefaultOptions uses json struct tags.
var DefaultOptions = Options{TagName: "json"}

var apis sync.Map

// api returns the jsoniter configuration that lowers native structs and
// JSON marshalers for these options. Numbers stay json.Number so integers
// keep their precision.
func (o Options) api() jsoniter.API {
	if api, ok := apis.Load(o.TagName); ok {
		return api.(jsoniter.API)
	}
	api, _ := apis.LoadOrStore(o.TagName, jsoniter.Config{
		EscapeHTML:  true,
		SortMapKeys: true,
		UseNumber:   true,
		TagKey:      o.TagName,
	}.Froze())
	return api.(jsoniter.API)
}

// Encode encodes v into a tree.
func Encode(v any, opts Options) (any, error) {
	s := NewSink(opts)
	if err := s.EncodeValue(v); err != nil {
		return nil, err
	}
	return s.Value(), nil
}

// Sink builds a single tree value.
type Sink struct {
	opts  Options
	value any
}

var _ adapt.Sink = &Sink{}

// NewSink creates an empty sink.
func NewSink(opts Options) *Sink {
	return &Sink{opts: opts}
}

// Value returns the tree built so far.
func (s *Sink) Value() any {
	return s.value
}

func (s *Sink) child() *Sink {
	return &Sink{opts: s.opts}
}

func (s *Sink) HumanReadable() bool { return true }

func (s *Sink) EncodeNil() error {
	s.value = nil
	return nil
}

func (s *Sink) EncodeBool(v bool) error {
	s.value = v
	return nil
}

func (s *Sink) EncodeInt(v int64) error {
	s.value = v
	return nil
}

func (s *Sink) EncodeUint(v uint64) error {
	s.value = v
	return nil
}

func (s *Sink) EncodeFloat(v float64) error {
	s.value = v
	return nil
}

func (s *Sink) EncodeString(v string) error {
	s.value = v
	return nil
}

func (s *Sink) EncodeBytes(v []byte) error {
	s.value = base64.StdEncoding.EncodeToString(v)
	return nil
}

func (s *Sink) EncodeSeq(n int, elems iter.Seq[adapt.Encodable]) error {
	items := make([]any, 0, n)
	for e := range elems {
		c := s.child()
		if err := c.EncodeValue(e); err != nil {
			return err
		}
		items = append(items, c.value)
	}
	if len(items) != n {
		return errors.Errorf("value: sequence declared %d elements, got %d", n, len(items))
	}
	s.value = items
	return nil
}

func (s *Sink) EncodeMap(n int, entries iter.Seq2[adapt.Encodable, adapt.Encodable]) error {
	m := make(map[string]any, n)
	for k, v := range entries {
		kc := s.child()
		if err := kc.EncodeValue(k); err != nil {
			return err
		}
		key, err := mapKey(kc.value)
		if err != nil {
			return err
		}
		vc := s.child()
		if err := vc.EncodeValue(v); err != nil {
			return err
		}
		m[key] = vc.value
	}
	s.value = m
	return nil
}

func (s *Sink) EncodeStruct(n int, fields iter.Seq2[string, adapt.Encodable]) error {
	m := make(map[string]any, n)
	for name, v := range fields {
		c := s.child()
		if err := c.EncodeValue(v); err != nil {
			return err
		}
		m[name] = c.value
	}
	s.value = m
	return nil
}

// EncodeValue encodes Encodable values through their own EncodeTo and
// lowers anything else to tree nodes.
func (s *Sink) EncodeValue(v any) error {
	if e, ok := v.(adapt.Encodable); ok {
		return e.EncodeTo(s)
	}
	switch x := v.(type) {
	case nil:
		return s.EncodeNil()
	case bool:
		return s.EncodeBool(x)
	case string:
		return s.EncodeString(x)
	case []byte:
		return s.EncodeBytes(x)
	case int64:
		return s.EncodeInt(x)
	case uint64:
		return s.EncodeUint(x)
	case float64:
		return s.EncodeFloat(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return s.EncodeInt(n)
		}
		f, err := x.Float64()
		if err != nil {
			return errors.Wrapf(err, "value: invalid number %q", x)
		}
		return s.EncodeFloat(f)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return s.EncodeNil()
	}
	switch x := v.(type) {
	case json.Marshaler:
		return s.encodeJSON(x)
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return err
		}
		return s.EncodeString(string(text))
	}
	return s.encodeReflect(rv)
}

// encodeJSON lowers v through its own JSON form, the way encoding/json
// would write it.
func (s *Sink) encodeJSON(v any) error {
	api := s.opts.api()
	data, err := api.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "value: encode %T", v)
	}
	var tree any
	if err := api.Unmarshal(data, &tree); err != nil {
		return errors.Wrapf(err, "value: encode %T", v)
	}
	return s.EncodeValue(tree)
}

func (s *Sink) encodeReflect(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		return s.EncodeBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.EncodeInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.EncodeUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return s.EncodeFloat(rv.Float())
	case reflect.String:
		return s.EncodeString(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return s.EncodeNil()
		}
		return s.EncodeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return s.EncodeNil()
		}
		n := rv.Len()
		return s.EncodeSeq(n, func(yield func(adapt.Encodable) bool) {
			for i := 0; i < n; i++ {
				if !yield(native{rv.Index(i).Interface()}) {
					return
				}
			}
		})
	case reflect.Map:
		if rv.IsNil() {
			return s.EncodeNil()
		}
		return s.EncodeMap(rv.Len(), func(yield func(adapt.Encodable, adapt.Encodable) bool) {
			it := rv.MapRange()
			for it.Next() {
				if !yield(native{it.Key().Interface()}, native{it.Value().Interface()}) {
					return
				}
			}
		})
	case reflect.Struct:
		return s.encodeJSON(rv.Interface())
	default:
		return errors.Errorf("value: unsupported type %s", rv.Type())
	}
}

// native routes a plain Go value back through EncodeValue.
type native struct {
	v any
}

func (n native) EncodeTo(s adapt.Sink) error {
	return s.EncodeValue(n.v)
}

func mapKey(v any) (string, error) {
	switch k := v.(type) {
	case string:
		return k, nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	case uint64:
		return strconv.FormatUint(k, 10), nil
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(k), nil
	default:
		return "", errors.Errorf("value: map key must be a string, got %T", v)
	}
}

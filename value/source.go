package value

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/RobertWHurst/adapt"
)

// Decode decodes the tree into the pointer v.
func Decode(tree any, v any, opts Options) error {
	return NewSource(tree, opts).DecodeValue(v)
}

// Source reads a single tree value.
type Source struct {
	opts  Options
	value any
	path  string
	// key is set for map keys, which trees always hold as strings.
	key bool
}

var _ adapt.Source = &Source{}

// NewSource creates a source reading tree.
func NewSource(tree any, opts Options) *Source {
	return &Source{opts: opts, value: tree}
}

func (s *Source) child(v any, path string) *Source {
	return &Source{opts: s.opts, value: v, path: path}
}

func (s *Source) HumanReadable() bool { return true }

func (s *Source) DecodeNil() (bool, error) {
	return s.value == nil, nil
}

func (s *Source) DecodeBool() (bool, error) {
	switch v := s.value.(type) {
	case bool:
		return v, nil
	case string:
		if s.key {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return false, s.invalid("bool")
			}
			return b, nil
		}
	}
	return false, s.invalid("bool")
}

func (s *Source) DecodeInt() (int64, error) {
	switch v := s.value.(type) {
	case string:
		if s.key {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, s.invalid("integer")
			}
			return n, nil
		}
		return 0, s.invalid("integer")
	case json.Number:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, s.invalid("integer")
		}
		return n, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, errors.Errorf("%s: %d overflows int64", s.where(), v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, s.invalid("integer")
		}
		return int64(v), nil
	case nil, bool, []any, map[string]any, map[any]any:
		return 0, s.invalid("integer")
	}
	n, err := cast.ToInt64E(s.value)
	if err != nil {
		return 0, errors.Wrap(err, s.where())
	}
	return n, nil
}

func (s *Source) DecodeUint() (uint64, error) {
	switch v := s.value.(type) {
	case string:
		if s.key {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return 0, s.invalid("unsigned integer")
			}
			return n, nil
		}
		return 0, s.invalid("unsigned integer")
	case json.Number:
		n, err := strconv.ParseUint(string(v), 10, 64)
		if err != nil {
			return 0, s.invalid("unsigned integer")
		}
		return n, nil
	case float64:
		if v != math.Trunc(v) || v < 0 || v >= math.MaxUint64 {
			return 0, s.invalid("unsigned integer")
		}
		return uint64(v), nil
	case nil, bool, []any, map[string]any, map[any]any:
		return 0, s.invalid("unsigned integer")
	}
	n, err := cast.ToUint64E(s.value)
	if err != nil {
		return 0, errors.Wrap(err, s.where())
	}
	return n, nil
}

func (s *Source) DecodeFloat() (float64, error) {
	switch v := s.value.(type) {
	case string:
		if s.key {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, s.invalid("float")
			}
			return f, nil
		}
		return 0, s.invalid("float")
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, s.invalid("float")
		}
		return f, nil
	case nil, bool, []any, map[string]any, map[any]any:
		return 0, s.invalid("float")
	}
	f, err := cast.ToFloat64E(s.value)
	if err != nil {
		return 0, errors.Wrap(err, s.where())
	}
	return f, nil
}

func (s *Source) DecodeString() (string, error) {
	switch v := s.value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", s.invalid("string")
}

func (s *Source) DecodeBytes() ([]byte, error) {
	switch v := s.value.(type) {
	case []byte:
		return v, nil
	case string:
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: invalid base64", s.where())
		}
		return b, nil
	case []any:
		out := make([]byte, 0, len(v))
		for i, x := range v {
			b, err := s.child(x, index(s.path, i)).DecodeUint()
			if err != nil {
				return nil, err
			}
			if b > math.MaxUint8 {
				return nil, errors.Errorf("%s: %d overflows a byte", index(s.path, i), b)
			}
			out = append(out, byte(b))
		}
		return out, nil
	}
	return nil, s.invalid("bytes")
}

func (s *Source) DecodeSeq(fn func(elem adapt.Source) error) error {
	items, ok := s.value.([]any)
	if !ok {
		return s.invalid("sequence")
	}
	for i, item := range items {
		if err := fn(s.child(item, index(s.path, i))); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap visits entries in key order, so decoding is deterministic even
// though trees do not keep insertion order.
func (s *Source) DecodeMap(fn func(key, value adapt.Source) error) error {
	m, ok := s.asMap()
	if !ok {
		return s.invalid("map")
	}
	for _, k := range sortedKeys(m) {
		key := s.child(k, s.path)
		key.key = true
		if err := fn(key, s.child(m[k], field(s.path, k))); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) DecodeStruct(fn func(field string, value adapt.Source) error) error {
	m, ok := s.asMap()
	if !ok {
		return s.invalid("struct")
	}
	for _, k := range sortedKeys(m) {
		if err := fn(k, s.child(m[k], field(s.path, k))); err != nil {
			return err
		}
	}
	return nil
}

// DecodeValue hands Decodable pointers this source and decodes anything
// else with mapstructure.
func (s *Source) DecodeValue(v any) error {
	if d, ok := v.(adapt.Decodable); ok {
		return d.DecodeFrom(s)
	}
	hook := mapstructure.ComposeDecodeHookFunc(
		base64Hook,
		s.jsonHook,
		mapstructure.TextUnmarshallerHookFunc(),
	)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          s.opts.TagName,
		WeaklyTypedInput: s.key,
		DecodeHook:       hook,
		Result:           v,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(s.value); err != nil {
		return errors.Wrap(err, s.where())
	}
	return nil
}

func (s *Source) Skip() error {
	return nil
}

func (s *Source) Custom(msg string) error {
	return &adapt.CustomError{Msg: msg, Path: s.path}
}

func (s *Source) asMap() (map[string]any, bool) {
	switch m := s.value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, err := mapKey(normalizeKey(k))
			if err != nil {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	}
	return nil, false
}

func (s *Source) invalid(expected string) error {
	return errors.Errorf("%s: invalid type %s, expected %s", s.where(), describe(s.value), expected)
}

func (s *Source) where() string {
	if s.path == "" {
		return "value"
	}
	return "value " + s.path
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "map"
	}
	return fmt.Sprintf("%T", v)
}

func normalizeKey(k any) any {
	switch x := k.(type) {
	case int:
		return int64(x)
	case uint:
		return uint64(x)
	}
	return k
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func field(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

var jsonUnmarshaler = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// jsonHook hands targets implementing json.Unmarshaler the JSON form of
// their tree, mirroring how the sink lowered them.
func (s *Source) jsonHook(from, to reflect.Type, data any) (any, error) {
	if data == nil || from == to || !reflect.PointerTo(to).Implements(jsonUnmarshaler) {
		return data, nil
	}
	api := s.opts.api()
	raw, err := api.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, s.where())
	}
	out := reflect.New(to)
	if err := out.Interface().(json.Unmarshaler).UnmarshalJSON(raw); err != nil {
		return nil, errors.Wrap(err, s.where())
	}
	return out.Elem().Interface(), nil
}

// base64Hook lets native []byte targets read the base64 text trees hold.
func base64Hook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]byte(nil)) {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(data.(string))
}

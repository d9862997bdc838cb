package value

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertWHurst/adapt"
)

type ints = adapt.Seq[int, adapt.Str[int]]

type plain struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Data  []byte `json:"data"`
}

func TestEncodeScalars(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want any
	}{
		{nil, nil},
		{true, true},
		{int8(-3), int64(-3)},
		{uint16(7), uint64(7)},
		{float32(1.5), float64(1.5)},
		{"s", "s"},
		{[]byte("hi"), "aGk="},
	} {
		got, err := Encode(tc.in, DefaultOptions)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%#v", tc.in)
	}
}

func TestEncodeNative(t *testing.T) {
	tree, err := Encode(plain{Name: "a", Count: 2, Data: []byte{1}}, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "a", "count": int64(2), "data": "AQ=="}, tree)

	tree, err = Encode(map[int][]string{1: {"x"}}, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": []any{"x"}}, tree)
}

func TestEncodeRejectsUnsupported(t *testing.T) {
	_, err := Encode(make(chan int), DefaultOptions)
	assert.Error(t, err)

	_, err = Encode(map[[2]int]int{{1, 2}: 3}, DefaultOptions)
	assert.Error(t, err)
}

func TestEncodeAdapted(t *testing.T) {
	xs := []int{3, 4}
	tree, err := Encode(adapt.Ref[[]int, ints]{V: &xs}, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, []any{"3", "4"}, tree)
}

func TestEncodeSeqLengthMismatch(t *testing.T) {
	s := NewSink(DefaultOptions)
	err := s.EncodeSeq(3, func(yield func(adapt.Encodable) bool) {
		yield(adapt.Wrap[int, adapt.Str[int]](1))
	})
	assert.ErrorContains(t, err, "declared 3 elements, got 1")
}

func TestDecodeNative(t *testing.T) {
	var p plain
	tree := map[string]any{"name": "a", "count": json.Number("2"), "data": "AQ=="}
	require.NoError(t, Decode(tree, &p, DefaultOptions))
	assert.Equal(t, plain{Name: "a", Count: 2, Data: []byte{1}}, p)
}

func TestDecodeAdapted(t *testing.T) {
	var w adapt.With[[]int, ints]
	require.NoError(t, Decode([]any{"3", "4"}, &w, DefaultOptions))
	assert.Equal(t, []int{3, 4}, w.Unwrap())
}

func TestDecodeNumbers(t *testing.T) {
	n, err := NewSource(json.Number("42"), DefaultOptions).DecodeInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = NewSource(float64(3), DefaultOptions).DecodeInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = NewSource(3.5, DefaultOptions).DecodeInt()
	assert.Error(t, err)

	_, err = NewSource(uint64(1<<63), DefaultOptions).DecodeInt()
	assert.Error(t, err)

	u, err := NewSource(int64(5), DefaultOptions).DecodeUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), u)

	_, err = NewSource(float64(-1), DefaultOptions).DecodeUint()
	assert.Error(t, err)

	f, err := NewSource(json.Number("0.25"), DefaultOptions).DecodeFloat()
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	_, err = NewSource("1", DefaultOptions).DecodeInt()
	assert.Error(t, err)
}

func TestDecodeKeysParseText(t *testing.T) {
	var keys []int64
	src := NewSource(map[string]any{"2": "b", "10": "a"}, DefaultOptions)
	err := src.DecodeMap(func(key, value adapt.Source) error {
		n, err := key.DecodeInt()
		keys = append(keys, n)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 2}, keys)
}

func TestDecodeMapAnyKeys(t *testing.T) {
	var seen []string
	src := NewSource(map[any]any{1: "a", "b": "c"}, DefaultOptions)
	err := src.DecodeStruct(func(field string, value adapt.Source) error {
		seen = append(seen, field)
		return value.Skip()
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "b"}, seen)
}

func TestDecodeBytes(t *testing.T) {
	b, err := NewSource("aGk=", DefaultOptions).DecodeBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), b)

	b, err = NewSource([]any{int64(1), float64(2)}, DefaultOptions).DecodeBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	_, err = NewSource([]any{int64(256)}, DefaultOptions).DecodeBytes()
	assert.ErrorContains(t, err, "overflows a byte")

	_, err = NewSource("not base64!", DefaultOptions).DecodeBytes()
	assert.Error(t, err)
}

func TestDecodeWrongShape(t *testing.T) {
	err := NewSource("x", DefaultOptions).DecodeSeq(func(adapt.Source) error { return nil })
	assert.ErrorContains(t, err, "invalid type string, expected sequence")

	src := NewSource(map[string]any{"a": []any{"x", true}}, DefaultOptions)
	err = src.DecodeStruct(func(_ string, value adapt.Source) error {
		return value.DecodeSeq(func(elem adapt.Source) error {
			_, err := elem.DecodeString()
			return err
		})
	})
	assert.ErrorContains(t, err, "value a[1]: invalid type bool, expected string")
}

func TestCustomCarriesPath(t *testing.T) {
	src := NewSource([]any{map[string]any{"x": "1"}}, DefaultOptions)
	err := src.DecodeSeq(func(elem adapt.Source) error {
		return elem.DecodeStruct(func(_ string, value adapt.Source) error {
			return value.Custom("nope")
		})
	})
	var ce *adapt.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "[0].x", ce.Path)
}

type stamped struct {
	At   time.Time  `json:"at"`
	Addr netip.Addr `json:"addr"`
}

type celsius float64

func (c celsius) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"celsius":%g}`, float64(c))), nil
}

func (c *celsius) UnmarshalJSON(data []byte) error {
	var v struct {
		Celsius float64 `json:"celsius"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = celsius(v.Celsius)
	return nil
}

func TestNativeMarshalers(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	addr := netip.MustParseAddr("10.0.0.1")

	tree, err := Encode(at, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05.000000006Z", tree)

	tree, err = Encode(stamped{At: at, Addr: addr}, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"at": "2024-01-02T03:04:05.000000006Z", "addr": "10.0.0.1"}, tree)

	var got stamped
	require.NoError(t, Decode(tree, &got, DefaultOptions))
	assert.True(t, at.Equal(got.At))
	assert.Equal(t, addr, got.Addr)

	tree, err = Encode(celsius(21.5), DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"celsius": 21.5}, tree)

	var c celsius
	require.NoError(t, Decode(tree, &c, DefaultOptions))
	assert.Equal(t, celsius(21.5), c)
}

func TestNilMarshalerPointer(t *testing.T) {
	var at *time.Time
	tree, err := Encode(at, DefaultOptions)
	require.NoError(t, err)
	assert.Nil(t, tree)
}

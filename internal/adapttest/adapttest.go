// Package adapttest holds helpers shared by the adapter tests.
package adapttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/encoders/json"
	"github.com/RobertWHurst/adapt/encoders/msgpack"
	"github.com/RobertWHurst/adapt/encoders/protobuf"
	"github.com/RobertWHurst/adapt/encoders/yaml"
)

// Encoders returns one encoder per binding, keyed by format name.
func Encoders() map[string]adapt.Encoder {
	return map[string]adapt.Encoder{
		"json":     json.New(),
		"yaml":     yaml.New(),
		"msgpack":  msgpack.New(),
		"protobuf": protobuf.New(),
	}
}

// CheckJSON encodes v with A, compares the JSON against expected and
// decodes it back into a value equal to v.
func CheckJSON[T any, A adapt.Adapter[T]](t *testing.T, v T, expected string) {
	t.Helper()
	data, err := adapt.Marshal[T, A](json.New(), v)
	require.NoError(t, err)
	require.JSONEq(t, expected, string(data))
	decoded, err := adapt.Unmarshal[T, A](json.New(), data)
	require.NoError(t, err)
	require.Equal(t, v, decoded)
}

// RoundTrip encodes v with A through every binding and checks the decoded
// value equals v.
func RoundTrip[T any, A adapt.Adapter[T]](t *testing.T, v T) {
	t.Helper()
	for name, enc := range Encoders() {
		data, err := adapt.Marshal[T, A](enc, v)
		require.NoError(t, err, name)
		decoded, err := adapt.Unmarshal[T, A](enc, data)
		require.NoError(t, err, name)
		require.Equal(t, v, decoded, name)
	}
}

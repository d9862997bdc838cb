package adapt

import (
	"bytes"
	"io"
	"math"

	"go.uber.org/zap"
)

// MaxDecodeSize bounds the payload DecodeReader is willing to buffer.
var MaxDecodeSize = int64(1024 * 1024 * 5) // 5 MB

// Encoder defines the interface of a format binding. Implementations
// include JSON, YAML, MessagePack and Protocol Buffers encoders.
//
// Encode must hand values implementing Encodable a Sink writing to the
// output, and Decode must hand pointers implementing Decodable a Source
// reading from data.
type Encoder interface {
	// Encode serializes v into bytes.
	Encode(v any) ([]byte, error)

	// Decode deserializes data into v.
	Decode(data []byte, v any) error
}

// Marshal encodes v with the adapter A using enc.
func Marshal[T any, A EncodeWith[T]](enc Encoder, v T) ([]byte, error) {
	return enc.Encode(Ref[T, A]{V: &v})
}

// Unmarshal decodes data into a T with the adapter A using enc.
func Unmarshal[T any, A Adapter[T]](enc Encoder, data []byte) (T, error) {
	var w With[T, A]
	if err := enc.Decode(data, &w); err != nil {
		var zero T
		return zero, err
	}
	return w.Unwrap(), nil
}

// EncodeReader encodes v like Marshal and returns the payload as a reader.
func EncodeReader[T any, A EncodeWith[T]](enc Encoder, v T) (io.Reader, error) {
	data, err := Marshal[T, A](enc, v)
	if err != nil {
		Logger().Debug("encode failed", zap.Error(err))
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// DecodeReader reads at most MaxDecodeSize bytes from r and decodes them
// like Unmarshal.
func DecodeReader[T any, A Adapter[T]](enc Encoder, r io.Reader) (T, error) {
	var zero T
	limit := MaxDecodeSize
	if limit < math.MaxInt64 {
		limit++
	}
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return zero, err
	}
	if int64(len(data)) > MaxDecodeSize {
		Logger().Debug("payload too large", zap.Int64("limit", MaxDecodeSize))
		return zero, ErrTooLarge
	}
	v, err := Unmarshal[T, A](enc, data)
	if err != nil {
		Logger().Debug("decode failed", zap.Int("size", len(data)), zap.Error(err))
		return zero, err
	}
	return v, nil
}

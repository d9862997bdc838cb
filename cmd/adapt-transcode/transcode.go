package main

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/encoders/json"
	"github.com/RobertWHurst/adapt/encoders/msgpack"
	"github.com/RobertWHurst/adapt/encoders/protobuf"
	"github.com/RobertWHurst/adapt/encoders/yaml"
	"github.com/RobertWHurst/adapt/internal/shape"
)

func encoderFor(name string) (adapt.Encoder, error) {
	switch name {
	case "json":
		return json.New(), nil
	case "yaml", "yml":
		return yaml.New(), nil
	case "msgpack":
		return msgpack.New(), nil
	case "protobuf", "proto":
		return protobuf.New(), nil
	}
	return nil, errors.Errorf("unknown format %q", name)
}

// transcode reads a shape document from r in the from format and writes it
// to w in the to format.
func transcode(r io.Reader, w io.Writer, from, to string) error {
	dec, err := encoderFor(from)
	if err != nil {
		return err
	}
	enc, err := encoderFor(to)
	if err != nil {
		return err
	}

	sh, err := adapt.DecodeReader[shape.Shape, shape.Doc](dec, r)
	if err != nil {
		return errors.Wrapf(err, "decode %s", from)
	}
	adapt.Logger().Debug("decoded shape",
		zap.String("name", sh.Name),
		zap.Int("points", len(sh.Points)),
	)

	data, err := adapt.Marshal[shape.Shape, shape.Doc](enc, sh)
	if err != nil {
		return errors.Wrapf(err, "encode %s", to)
	}
	_, err = w.Write(data)
	return err
}

package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/encoders/json"
	"github.com/RobertWHurst/adapt/internal/adapttest"
	"github.com/RobertWHurst/adapt/internal/shape"
	"github.com/RobertWHurst/adapt/value"
)

func square() shape.Shape {
	return shape.Shape{
		Name:   "square",
		Points: []shape.Point[int]{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}},
		Tags:   map[string]int{"sides": 4, "corners": 4},
		Origin: &shape.Point[int]{X: 1, Y: 1},
	}
}

func TestDocJSON(t *testing.T) {
	sh := shape.Shape{
		Name:   "dot",
		Points: []shape.Point[int]{{X: 1, Y: 2}},
		Tags:   map[string]int{"n": 1},
	}
	adapttest.CheckJSON[shape.Shape, shape.Doc](t, sh,
		`{"name":"dot","points":[{"x":"1","y":"2"}],"tags":{"n":1},"origin":null}`)
}

func TestDocRoundTrip(t *testing.T) {
	adapttest.RoundTrip[shape.Shape, shape.Doc](t, square())

	sh := square()
	sh.Origin = nil
	sh.Points = []shape.Point[int]{}
	adapttest.RoundTrip[shape.Shape, shape.Doc](t, sh)
}

func TestDocRejectsBadPoint(t *testing.T) {
	data := []byte(`{"name":"x","points":[{"x":"1","y":"?"}],"tags":{},"origin":null}`)
	_, err := adapt.Unmarshal[shape.Shape, shape.Doc](json.New(), data)

	var ce *adapt.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "points[0].y", ce.Path)
}

func TestDocMissingOrigin(t *testing.T) {
	data := []byte(`{"name":"x","points":[],"tags":{}}`)
	_, err := adapt.Unmarshal[shape.Shape, shape.Doc](json.New(), data)
	assert.ErrorContains(t, err, `missing field "origin"`)
}

func TestCoordsOtherLeaves(t *testing.T) {
	data, err := adapt.Marshal[shape.Point[float64], shape.Coords[float64, adapt.Str[float64]]](json.New(), shape.Point[float64]{X: 0.5, Y: -1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":"0.5","y":"-1"}`, string(data))

	adapttest.CheckJSON[[]shape.Point[int], adapt.Seq[shape.Point[int], shape.Coords[int, adapt.Id[int]]]](t,
		[]shape.Point[int]{{X: 1, Y: 2}}, `[{"x":1,"y":2}]`)
}

func TestCoordsEntryPoints(t *testing.T) {
	sink := value.NewSink(value.DefaultOptions)
	err := adapt.EncodeRecord(sink,
		adapt.Field("at", shape.EncodeCoords[int, adapt.Str[int]], shape.Point[int]{X: 4, Y: 5}),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"at": map[string]any{"x": "4", "y": "5"}}, sink.Value())

	var at shape.Point[int]
	src := value.NewSource(sink.Value(), value.DefaultOptions)
	require.NoError(t, adapt.DecodeRecord(src, adapt.Into("at", shape.DecodeCoords[int, adapt.Str[int]], &at)))
	assert.Equal(t, shape.Point[int]{X: 4, Y: 5}, at)
}

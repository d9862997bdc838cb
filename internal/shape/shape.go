// Package shape holds a small schema built from user-defined adapters: a
// Point record whose coordinates go through a nested adapter, and a Shape
// document made of points. The transcode command and the tests share it.
package shape

import "github.com/RobertWHurst/adapt"

// Point is a two dimensional point.
type Point[T any] struct {
	X T
	Y T
}

// Coords encodes a Point as a {x, y} record, each coordinate through A.
type Coords[T any, A adapt.Adapter[T]] struct{}

var _ adapt.Adapter[Point[int]] = Coords[int, adapt.Str[int]]{}

func (Coords[T, A]) EncodeWith(s adapt.Sink, v *Point[T]) error {
	return adapt.EncodeRecord(s,
		adapt.Field("x", adapt.Encode[T, A], v.X),
		adapt.Field("y", adapt.Encode[T, A], v.Y),
	)
}

func (Coords[T, A]) DecodeWith(s adapt.Source) (Point[T], error) {
	var p Point[T]
	err := adapt.DecodeRecord(s,
		adapt.Into("x", adapt.Decode[T, A], &p.X),
		adapt.Into("y", adapt.Decode[T, A], &p.Y),
	)
	return p, err
}

func EncodeCoords[T any, A adapt.Adapter[T]](s adapt.Sink, v Point[T]) error {
	return Coords[T, A]{}.EncodeWith(s, &v)
}

func DecodeCoords[T any, A adapt.Adapter[T]](s adapt.Source) (Point[T], error) {
	return Coords[T, A]{}.DecodeWith(s)
}

// Shape is the document the transcode command reads and writes.
type Shape struct {
	Name   string
	Points []Point[int]
	Tags   map[string]int
	Origin *Point[int]
}

// Points is the adapter used for Shape.Points.
type Points = adapt.Seq[Point[int], Coords[int, adapt.Str[int]]]

// Doc encodes a Shape as a record.
type Doc struct{}

var _ adapt.Adapter[Shape] = Doc{}

func (Doc) EncodeWith(s adapt.Sink, v *Shape) error {
	return adapt.EncodeRecord(s,
		adapt.Field("name", adapt.EncodeId[string], v.Name),
		adapt.Field("points", adapt.EncodeSeq[Point[int], Coords[int, adapt.Str[int]]], v.Points),
		adapt.Field("tags", adapt.EncodeMap[string, int, adapt.Id[string], adapt.Id[int]], v.Tags),
		adapt.Field("origin", adapt.EncodeOption[Point[int], Coords[int, adapt.Id[int]]], v.Origin),
	)
}

func (Doc) DecodeWith(s adapt.Source) (Shape, error) {
	var sh Shape
	err := adapt.DecodeRecord(s,
		adapt.Into("name", adapt.DecodeId[string], &sh.Name),
		adapt.Into("points", adapt.DecodeSeq[Point[int], Coords[int, adapt.Str[int]]], &sh.Points),
		adapt.Into("tags", adapt.DecodeMap[string, int, adapt.Id[string], adapt.Id[int]], &sh.Tags),
		adapt.Into("origin", adapt.DecodeOption[Point[int], Coords[int, adapt.Id[int]]], &sh.Origin),
	)
	return sh, err
}

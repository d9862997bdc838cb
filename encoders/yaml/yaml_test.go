package yaml

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/RobertWHurst/adapt"
	"github.com/RobertWHurst/adapt/internal/shape"
)

type ints = adapt.Seq[int, adapt.Str[int]]

type testStruct struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

func TestEncoderEncode(t *testing.T) {
	encoder := New()

	encoded, err := encoder.Encode(testStruct{Name: "test", Value: 42})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	expected := "name: test\nvalue: 42\n"
	if string(encoded) != expected {
		t.Errorf("Expected %q, got %q", expected, string(encoded))
	}
}

func TestSeqOfStr(t *testing.T) {
	encoded, err := adapt.Marshal[[]int, ints](New(), []int{3, 4})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	expected := "- \"3\"\n- \"4\"\n"
	if string(encoded) != expected {
		t.Errorf("Expected %q, got %q", expected, string(encoded))
	}

	decoded, err := adapt.Unmarshal[[]int, ints](New(), encoded)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != 3 || decoded[1] != 4 {
		t.Errorf("Expected [3 4], got %v", decoded)
	}
}

func TestShapeRoundTrip(t *testing.T) {
	origin := shape.Point[int]{X: 0, Y: 0}
	original := shape.Shape{
		Name:   "square",
		Points: []shape.Point[int]{{X: 0, Y: 0}, {X: 1, Y: 1}},
		Tags:   map[string]int{"sides": 4},
		Origin: &origin,
	}

	encoded, err := adapt.Marshal[shape.Shape, shape.Doc](New(), original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(encoded), `x: "1"`) {
		t.Errorf("Expected points as text, got %s", encoded)
	}

	decoded, err := adapt.Unmarshal[shape.Shape, shape.Doc](New(), encoded)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded.Name != "square" || len(decoded.Points) != 2 || decoded.Points[1].X != 1 {
		t.Errorf("Unexpected shape %+v", decoded)
	}
	if decoded.Tags["sides"] != 4 || decoded.Origin == nil {
		t.Errorf("Unexpected shape %+v", decoded)
	}
}

func TestParseFailureIsCustomError(t *testing.T) {
	_, err := adapt.Unmarshal[[]int, ints](New(), []byte("- \"1\"\n- nope\n"))
	if !adapt.IsCustom(err) {
		t.Fatalf("Expected custom error, got %v", err)
	}
}

func TestEncoderDecodeInvalid(t *testing.T) {
	_, err := adapt.Unmarshal[[]int, ints](New(), []byte("- [\n"))
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

type record struct {
	Xs Field[[]int, ints] `yaml:"xs"`
}

func TestFieldInPlainStruct(t *testing.T) {
	encoded, err := yaml.Marshal(record{Xs: Field[[]int, ints]{Value: []int{1}}})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	expected := "xs:\n    - \"1\"\n"
	if string(encoded) != expected {
		t.Errorf("Expected %q, got %q", expected, string(encoded))
	}

	var decoded record
	if err := yaml.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if len(decoded.Xs.Value) != 1 || decoded.Xs.Value[0] != 1 {
		t.Errorf("Expected [1], got %v", decoded.Xs.Value)
	}
}

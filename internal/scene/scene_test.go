package scene_test

import (
	"encoding/json"
	"testing"

	"github.com/brightlin/rnray/internal/scene"
)

func TestSceneUnmarshalJSONDispatchesByType(t *testing.T) {
	doc := []byte(`{
		"objects": [
			{"type": "sphere", "center": {"x":0,"y":0,"z":0}, "radius": 1, "color": {"r":255,"g":0,"b":0,"a":255}},
			{"type": "disc", "innerRadius": 0.5, "outerRadius": 2, "color1": {"r":255,"a":255}, "color2": {"b":255,"a":255}, "divisions": 8},
			{"type": "pathLogger", "x": 3, "y": 4}
		]
	}`)

	var s scene.Scene
	if err := json.Unmarshal(doc, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(s.Objects) != 3 {
		t.Fatalf("got %d objects, want 3", len(s.Objects))
	}
}

func TestSceneUnmarshalJSONRejectsUnknownType(t *testing.T) {
	doc := []byte(`{"objects": [{"type": "nonsense"}]}`)

	var s scene.Scene
	if err := json.Unmarshal(doc, &s); err == nil {
		t.Fatalf("expected an error for an unrecognized object type")
	}
}

func TestSceneAddObjectAppends(t *testing.T) {
	var s scene.Scene
	if len(s.Objects) != 0 {
		t.Fatalf("zero-value Scene should have no objects")
	}
	s.AddObject(nil)
	if len(s.Objects) != 1 {
		t.Fatalf("AddObject should append, got %d objects", len(s.Objects))
	}
}

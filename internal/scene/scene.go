// Package scene holds the ordered collection of hit-testable objects a
// render pass queries. Objects are owned externally (by whatever
// constructed the Scene, typically a decoded JSON document) and are only
// borrowed by the renderer for the duration of a render pass.
package scene

import (
	"encoding/json"

	"github.com/brightlin/rnray/internal/object"
)

// Scene is an ordered list of scene objects. Order is preserved and
// observable only through hit-test tie-breaking: when two objects report a
// hit at the same distance, the one added first wins.
type Scene struct {
	Objects []object.Object
}

// AddObject appends obj to the scene.
func (s *Scene) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// UnmarshalJSON decodes a scene document's "objects" array via the
// tagged-union dispatch in the object package.
func (s *Scene) UnmarshalJSON(b []byte) error {
	aux := &struct {
		Objects object.JSONObjects `json:"objects"`
	}{}
	if err := json.Unmarshal(b, aux); err != nil {
		return err
	}
	s.Objects = aux.Objects
	return nil
}

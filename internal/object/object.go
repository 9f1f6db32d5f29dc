// Package object implements the scene primitives the ray-marcher
// hit-tests against: spheres, striped/textured spheres, and equatorial
// discs. Every variant tests a *segment* of the geodesic (prev -> next),
// never a single point, per the renderer's two-slot sliding window.
package object

import (
	"encoding/json"
	"fmt"

	"github.com/brightlin/rnray/pkg/geo"
	"github.com/brightlin/rnray/pkg/geodesic"
)

// Object is a scene primitive hit-testable against a geodesic segment.
type Object interface {
	HitTest(prev, next *geodesic.Ray) geo.HitTestResult
}

// JSONObjects is a named slice type so a list of heterogeneous Object
// implementations can be unmarshalled from a JSON array tagged by a "type"
// field.
type JSONObjects []Object

// UnmarshalJSON dispatches each array element to the Object implementation
// named by its "type" field.
func (objs *JSONObjects) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var typed []struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &typed); err != nil {
		return err
	}

	result := make(JSONObjects, 0, len(raw))
	for i, t := range typed {
		obj, err := unmarshalOne(t.Type, raw[i])
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		result = append(result, obj)
	}
	*objs = result
	return nil
}

func unmarshalOne(kind string, data json.RawMessage) (Object, error) {
	switch kind {
	case "sphere":
		var s Sphere
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return &s, nil
	case "stripedSphere":
		var s StripedSphere
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		s.init()
		return &s, nil
	case "texturedSphere":
		var s TexturedSphere
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		if err := s.init(); err != nil {
			return nil, err
		}
		return &s, nil
	case "disc":
		var d Disc
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		d.init()
		return &d, nil
	case "pathLogger":
		var p PathLogger
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &p, nil
	default:
		return nil, fmt.Errorf("unrecognized object type %q", kind)
	}
}

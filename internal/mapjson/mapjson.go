// Package mapjson converts hex collections to and from the JSON map format.
// Import validates shape and enums up front and never returns a partial map,
// so callers can swap in the result only on success.
package mapjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talgya/frontier-map/internal/world"
)

// ImportError is a user-facing explanation of why an import was rejected.
type ImportError struct {
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ErrNotArray is returned when the document root is not a JSON array.
var ErrNotArray = errors.New("root must be an array of hex objects")

// Export writes hexes as an indented JSON array, preserving order.
func Export(hexes []world.Hex) ([]byte, error) {
	if hexes == nil {
		hexes = []world.Hex{}
	}
	data, err := json.MarshalIndent(hexes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal map: %w", err)
	}
	return data, nil
}

// Import parses and validates a JSON map.
func Import(data []byte) ([]world.Hex, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		if !json.Valid(trimmed) {
			return nil, &ImportError{Message: "invalid JSON", Err: syntaxError(trimmed)}
		}
		return nil, &ImportError{Message: ErrNotArray.Error(), Err: ErrNotArray}
	}

	var hexes []world.Hex
	if err := json.Unmarshal(trimmed, &hexes); err != nil {
		return nil, &ImportError{Message: "invalid map data", Err: err}
	}

	for i := range hexes {
		if err := validate(&hexes[i]); err != nil {
			return nil, &ImportError{Message: fmt.Sprintf("hex %d (%q)", i, hexes[i].ID), Err: err}
		}
		if len(hexes[i].Effects) == 0 {
			hexes[i].Effects = nil
		}
	}

	if collisions := world.Collisions(hexes); len(collisions) > 0 {
		return nil, &ImportError{Message: "duplicate coordinates", Err: collisions[0]}
	}

	if hexes == nil {
		hexes = []world.Hex{}
	}
	return hexes, nil
}

func validate(h *world.Hex) error {
	if h.ID == "" {
		return errors.New("missing id")
	}
	if !h.Terrain.Valid() {
		return fmt.Errorf("unknown terrain %q", h.Terrain)
	}
	if !h.Element.Valid() {
		return fmt.Errorf("unknown element %q", h.Element)
	}
	for _, e := range h.Effects {
		if !e.Type.Valid() {
			return fmt.Errorf("unknown overlay type %q", e.Type)
		}
		if e.Strength < 0 || e.Strength > 1 {
			return fmt.Errorf("effect strength %v outside [0, 1]", e.Strength)
		}
	}
	return nil
}

// syntaxError recovers the decoder's error for a malformed document.
func syntaxError(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return errors.New("malformed JSON")
}

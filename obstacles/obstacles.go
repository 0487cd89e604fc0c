package obstacles

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// jsonDocument keeps "data" raw so both the array and the string shape decode.
type jsonDocument struct {
	Data json.RawMessage `json:"data"`
}

// yamlDocument keeps "data" as a node for the same reason.
type yamlDocument struct {
	Data yaml.Node `yaml:"data"`
}

// Load opens path and decodes it in the format implied by its extension.
func Load(path string) ([]gridgraph.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obstacles: open %s: %w", path, err)
	}
	defer f.Close()

	points, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Decode reads one obstacle document from r.
// The returned points are in document order; duplicates are kept.
func Decode(r io.Reader, format Format) ([]gridgraph.Point, error) {
	var (
		pairs [][]int
		err   error
	)
	switch format {
	case YAML:
		pairs, err = decodeYAML(r)
	default:
		pairs, err = decodeJSON(r)
	}
	if err != nil {
		return nil, err
	}

	return toPoints(pairs)
}

func decodeJSON(r io.Reader) ([][]int, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("obstacles: decode json: %w", err)
	}
	if len(doc.Data) == 0 || string(doc.Data) == "null" {
		return nil, ErrMissingData
	}

	raw := []byte(doc.Data)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("obstacles: decode json: %w", err)
		}
		raw = []byte(s)
	}

	var pairs [][]int
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPair, err)
	}

	return pairs, nil
}

func decodeYAML(r io.Reader) ([][]int, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrMissingData
		}
		return nil, fmt.Errorf("obstacles: decode yaml: %w", err)
	}

	var pairs [][]int
	switch doc.Data.Kind {
	case 0:
		return nil, ErrMissingData
	case yaml.ScalarNode:
		if doc.Data.Tag == "!!null" {
			return nil, ErrMissingData
		}
		// a JSON array is valid YAML flow syntax
		if err := yaml.Unmarshal([]byte(doc.Data.Value), &pairs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPair, err)
		}
	default:
		if err := doc.Data.Decode(&pairs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPair, err)
		}
	}

	return pairs, nil
}

// toPoints converts [x, y] pairs, rejecting any entry of another length.
// Coordinates are not range-checked here; the grid does that.
func toPoints(pairs [][]int) ([]gridgraph.Point, error) {
	points := make([]gridgraph.Point, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d values", ErrBadPair, i, len(pair))
		}
		points = append(points, gridgraph.Point{X: pair[0], Y: pair[1]})
	}

	return points, nil
}

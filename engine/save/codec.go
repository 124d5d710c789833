package save

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/superadventure/types"
)

// Codec encodes save documents.
type Codec interface {
	Name() string
	Marshal(d *Document) ([]byte, error)
	Unmarshal(data []byte) (*Document, error)
}

// JSONCodec writes indented JSON.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return normalize(&d), nil
}

// YAMLCodec writes YAML. It also reads JSON documents.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Marshal(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

func (YAMLCodec) Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return normalize(&d), nil
}

// CodecFor returns the codec for a format name ("json" or "yaml").
func CodecFor(format string) (Codec, error) {
	switch format {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("save: unknown format %q", format)
	}
}

// normalize ensures slices are never nil after decoding.
func normalize(d *Document) *Document {
	if d.Inventory == nil {
		d.Inventory = []types.ItemCount{}
	}
	if d.Quests == nil {
		d.Quests = []types.PlayerQuest{}
	}
	return d
}

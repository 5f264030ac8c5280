package adapters

import (
	"encoding/json"
	"fmt"

	toon "github.com/tooncore/toon-go"
	"gopkg.in/yaml.v3"
)

// LoadYAML converts YAML input into a TOON-ready tree value. It walks
// yaml.Node directly rather than unmarshaling into map[string]any, since a
// mapping node's Content alternates key/value nodes in document order and a
// plain Go map would discard that order before the encoder ever sees it.
func LoadYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("adapters: yaml: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	value, err := yamlNodeToValue(&doc)
	if err != nil {
		return nil, fmt.Errorf("adapters: yaml: %w", err)
	}
	return value, nil
}

func yamlNodeToValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlNodeToValue(node.Content[0])
	case yaml.MappingNode:
		fields := make([]toon.Field, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := yamlNodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, toon.Field{Key: node.Content[i].Value, Value: value})
		}
		return toon.NewObject(fields...), nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := yamlNodeToValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.ScalarNode:
		return yamlScalarToValue(node)
	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)
	default:
		return nil, fmt.Errorf("unsupported node kind %v", node.Kind)
	}
}

func yamlScalarToValue(node *yaml.Node) (any, error) {
	switch node.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int", "!!float":
		return json.Number(node.Value), nil
	default:
		return node.Value, nil
	}
}

package document

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Parse parses YAML contents into a node tree.
// The returned node is the document node, its first child is the root mapping.
func Parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Render serializes a node tree back to YAML.
// Nested mappings and sequences are always rendered in block layout,
// even if the source document used inline flow style.
// Key order is kept as-is: the node tree preserves insertion order.
func Render(node *yaml.Node) ([]byte, error) {
	blockStyle(node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func blockStyle(node *yaml.Node) {
	if node == nil {
		return
	}
	if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
		node.Style = 0
	}
	for _, child := range node.Content {
		blockStyle(child)
	}
}

package document

import "gopkg.in/yaml.v3"

// RelocateExamples moves schema-level `examples` to the content level,
// recursively, at every depth of the node tree.
//
// Whenever a mapping has a `schema` mapping with an `examples` key,
// the `examples` entry is detached from the schema and set on every
// media-type entry of the sibling `content` mapping that has a `schema`.
// All destinations share the same detached node, it is not cloned per entry.
// Without a `content` sibling the detached value is dropped.
//
// The input is mutated in place and returned for convenience.
func RelocateExamples(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			RelocateExamples(child)
		}
	case yaml.MappingNode:
		relocate(node)
		for i := 1; i < len(node.Content); i += 2 {
			RelocateExamples(node.Content[i])
		}
	}

	return node
}

func relocate(node *yaml.Node) {
	schema := MapValue(node, "schema")
	if schema == nil || schema.Kind != yaml.MappingNode {
		return
	}

	examples := MapValue(schema, "examples")
	if examples == nil {
		return
	}
	RemoveKey(schema, "examples")

	content := MapValue(node, "content")
	if content == nil || content.Kind != yaml.MappingNode {
		// nothing to attach to, the detached value is dropped
		return
	}

	for i := 1; i < len(content.Content); i += 2 {
		mediaType := content.Content[i]
		if mediaType.Kind != yaml.MappingNode || MapValue(mediaType, "schema") == nil {
			continue
		}
		SetKey(mediaType, "examples", examples)
	}
}

// MapValue returns the value node for a key in a mapping node, or nil.
func MapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// SetKey sets a key on a mapping node.
// An existing entry is replaced in place, a new one is appended at the end.
func SetKey(node *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = value
			return
		}
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

// RemoveKey removes a key and its value from a mapping node.
// The order of the remaining entries is unchanged.
func RemoveKey(node *yaml.Node, key string) {
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			node.Content = append(node.Content[:i], node.Content[i+2:]...)
			return
		}
	}
}

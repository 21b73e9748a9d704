package document

import (
	yit "github.com/dprotaso/go-yit"
	"gopkg.in/yaml.v3"
)

// Candidate is a single relocation site found in a document.
type Candidate struct {
	// Line is the line of the `examples` key inside the schema mapping.
	Line int

	// HasDestination reports whether at least one content media type has a
	// `schema` to receive the value. When false, a rewrite drops the examples.
	HasDestination bool
}

// FindRelocatable scans a node tree for schema-level `examples` entries
// that a rewrite would relocate. The tree is not modified.
func FindRelocatable(node *yaml.Node) []Candidate {
	var found []Candidate
	if node == nil {
		return found
	}

	it := yit.FromNode(node).
		RecurseNodes().
		Filter(yit.WithKind(yaml.MappingNode))

	for mapping, ok := it(); ok; mapping, ok = it() {
		schema := MapValue(mapping, "schema")
		if schema == nil || schema.Kind != yaml.MappingNode {
			continue
		}
		line := 0
		for i := 0; i < len(schema.Content)-1; i += 2 {
			if schema.Content[i].Value == "examples" {
				line = schema.Content[i].Line
				break
			}
		}
		if line == 0 {
			continue
		}

		found = append(found, Candidate{
			Line:           line,
			HasDestination: hasDestination(MapValue(mapping, "content")),
		})
	}

	return found
}

func hasDestination(content *yaml.Node) bool {
	if content == nil || content.Kind != yaml.MappingNode {
		return false
	}
	for i := 1; i < len(content.Content); i += 2 {
		mediaType := content.Content[i]
		if mediaType.Kind == yaml.MappingNode && MapValue(mediaType, "schema") != nil {
			return true
		}
	}
	return false
}

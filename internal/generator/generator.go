package generator

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/cubahno/oasfix/internal/document"
	"gopkg.in/yaml.v3"
)

// maxDepth limits recursion into nested object and array schemas.
// Unresolved circular schemas would otherwise never terminate.
const maxDepth = 10

// Generator synthesizes example values from schema nodes.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator with a fixed seed so repeated runs
// produce the same examples.
func New() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// FillMissing walks the node tree and adds a generated `examples` entry
// to every content media type that has a `schema` but no examples yet.
// Returns the number of entries filled.
func (g *Generator) FillMissing(node *yaml.Node) int {
	if node == nil {
		return 0
	}

	filled := 0

	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			filled += g.FillMissing(child)
		}
	case yaml.MappingNode:
		if content := document.MapValue(node, "content"); content != nil && content.Kind == yaml.MappingNode {
			filled += g.fillContent(content)
		}
		for i := 1; i < len(node.Content); i += 2 {
			filled += g.FillMissing(node.Content[i])
		}
	}

	return filled
}

func (g *Generator) fillContent(content *yaml.Node) int {
	filled := 0

	for i := 1; i < len(content.Content); i += 2 {
		mediaType := content.Content[i]
		if mediaType.Kind != yaml.MappingNode {
			continue
		}
		if document.MapValue(mediaType, "examples") != nil || document.MapValue(mediaType, "example") != nil {
			continue
		}

		schema := document.MapValue(mediaType, "schema")
		value := g.FromSchema(schema)
		if value == nil {
			continue
		}

		examples := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		named := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		document.SetKey(named, "value", value)
		document.SetKey(examples, "generated", named)
		document.SetKey(mediaType, "examples", examples)
		filled++
	}

	return filled
}

// FromSchema creates an example node for a schema node.
// Returns nil when the schema shape is not recognized,
// e.g. an unresolved $ref or a missing type.
func (g *Generator) FromSchema(schema *yaml.Node) *yaml.Node {
	return g.fromSchema(schema, 0)
}

func (g *Generator) fromSchema(schema *yaml.Node, depth int) *yaml.Node {
	if schema == nil || schema.Kind != yaml.MappingNode || depth > maxDepth {
		return nil
	}

	// a declared example always wins over a generated one
	if example := document.MapValue(schema, "example"); example != nil {
		return example
	}

	if enum := document.MapValue(schema, "enum"); enum != nil && enum.Kind == yaml.SequenceNode && len(enum.Content) > 0 {
		return enum.Content[0]
	}

	typeNode := document.MapValue(schema, "type")
	typeName := ""
	if typeNode != nil {
		typeName = typeNode.Value
	}
	if typeName == "" && document.MapValue(schema, "properties") != nil {
		typeName = "object"
	}

	switch typeName {
	case "string":
		return scalar("!!str", g.stringValue(schema))
	case "integer":
		return scalar("!!int", strconv.Itoa(g.faker.Number(1, 1000)))
	case "number":
		return scalar("!!float", strconv.FormatFloat(g.faker.Float64Range(1, 1000), 'f', 2, 64))
	case "boolean":
		return scalar("!!bool", strconv.FormatBool(g.faker.Bool()))
	case "array":
		item := g.fromSchema(document.MapValue(schema, "items"), depth+1)
		if item == nil {
			return nil
		}
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{item}}
	case "object":
		return g.objectFromSchema(schema, depth)
	}

	return nil
}

func (g *Generator) objectFromSchema(schema *yaml.Node, depth int) *yaml.Node {
	properties := document.MapValue(schema, "properties")
	if properties == nil || properties.Kind != yaml.MappingNode {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}

	result := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < len(properties.Content)-1; i += 2 {
		name := properties.Content[i].Value
		value := g.fromSchema(properties.Content[i+1], depth+1)
		if value == nil {
			continue
		}
		document.SetKey(result, name, value)
	}

	return result
}

func (g *Generator) stringValue(schema *yaml.Node) string {
	format := ""
	if formatNode := document.MapValue(schema, "format"); formatNode != nil {
		format = formatNode.Value
	}

	switch format {
	case "email":
		return g.faker.Email()
	case "uuid":
		return g.faker.UUID()
	case "uri", "url":
		return g.faker.URL()
	case "hostname":
		return g.faker.DomainName()
	case "ipv4":
		return g.faker.IPv4Address()
	case "date":
		return g.faker.Date().Format("2006-01-02")
	case "date-time":
		return g.faker.Date().Format(time.RFC3339)
	}

	return g.faker.Word()
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

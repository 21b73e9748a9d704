package document

import (
	"strings"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

func rewrite(t *testing.T, contents string) string {
	t.Helper()

	doc, err := Parse([]byte(contents))
	if err != nil {
		t.Fatal(err)
	}

	RelocateExamples(doc)

	result, err := Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	return string(result)
}

func TestRelocateExamples(t *testing.T) {
	assert := assert2.New(t)

	t.Run("moves-examples-to-every-content-entry", func(t *testing.T) {
		contents := `
schema:
  type: object
  examples:
    sample:
      foo: 1
content:
  application/json:
    schema:
      type: object
  application/xml:
    schema:
      type: object
`
		expected := `schema:
  type: object
content:
  application/json:
    schema:
      type: object
    examples:
      sample:
        foo: 1
  application/xml:
    schema:
      type: object
    examples:
      sample:
        foo: 1
`
		assert.Equal(expected, rewrite(t, contents))
	})

	t.Run("non-matching-input-is-untouched", func(t *testing.T) {
		contents := `paths:
  /pets:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                type: array
`
		assert.Equal(contents, rewrite(t, contents))
	})

	t.Run("pattern-is-found-inside-sequences", func(t *testing.T) {
		contents := `
paths:
  /x:
    post:
      parameters:
        - name: body
          deep:
            schema:
              examples:
                sample: 1
            content:
              application/json:
                schema:
                  type: string
`
		result := rewrite(t, contents)
		doc, err := Parse([]byte(result))
		assert.NoError(err)

		path, err := yamlpath.NewPath("$..schema.examples")
		assert.NoError(err)
		matches, err := path.Find(doc)
		assert.NoError(err)
		assert.Empty(matches)

		path, err = yamlpath.NewPath("$..content.*.examples.sample")
		assert.NoError(err)
		matches, err = path.Find(doc)
		assert.NoError(err)
		assert.Len(matches, 1)
		assert.Equal("1", matches[0].Value)
	})

	t.Run("sibling-key-order-is-preserved", func(t *testing.T) {
		contents := `zeta: 1
alpha: 2
mike: 3
delta:
  zulu: a
  india: b
`
		assert.Equal(contents, rewrite(t, contents))
	})

	t.Run("second-run-is-a-no-op", func(t *testing.T) {
		contents := `
requestBody:
  schema:
    type: object
    examples:
      sample:
        foo: 1
  content:
    application/json:
      schema:
        type: object
`
		once := rewrite(t, contents)
		assert.Equal(once, rewrite(t, once))
	})

	t.Run("missing-content-drops-examples", func(t *testing.T) {
		contents := `
requestBody:
  schema:
    type: object
    examples:
      sample:
        foo: 1
`
		result := rewrite(t, contents)
		assert.NotContains(result, "examples")
		assert.Contains(result, "type: object")
	})

	t.Run("content-entry-without-schema-is-skipped", func(t *testing.T) {
		contents := `
schema:
  examples:
    sample: 1
content:
  application/json:
    schema:
      type: string
  text/plain:
    description: no schema here
`
		result := rewrite(t, contents)
		assert.Contains(result, "application/json:\n    schema:\n      type: string\n    examples:\n      sample: 1")
		assert.Contains(result, "text/plain:\n    description: no schema here")
		assert.Equal(1, strings.Count(result, "examples:"))
	})

	t.Run("scalar-schema-is-skipped", func(t *testing.T) {
		contents := `schema: examples
content:
  application/json:
    schema:
      type: string
`
		assert.Equal(contents, rewrite(t, contents))
	})

	t.Run("scalar-content-drops-examples", func(t *testing.T) {
		contents := `
schema:
  examples:
    sample: 1
content: none
`
		result := rewrite(t, contents)
		assert.NotContains(result, "examples")
		assert.Contains(result, "content: none")
	})

	t.Run("destinations-share-one-node", func(t *testing.T) {
		contents := `
schema:
  examples:
    sample: 1
content:
  application/json:
    schema:
      type: string
  application/xml:
    schema:
      type: string
`
		doc, err := Parse([]byte(contents))
		assert.NoError(err)
		RelocateExamples(doc)

		root := doc.Content[0]
		content := MapValue(root, "content")
		first := MapValue(MapValue(content, "application/json"), "examples")
		second := MapValue(MapValue(content, "application/xml"), "examples")
		assert.NotNil(first)
		assert.Same(first, second)
	})

	t.Run("existing-content-examples-are-replaced", func(t *testing.T) {
		contents := `
schema:
  examples:
    fresh: 1
content:
  application/json:
    schema:
      type: string
    examples:
      stale: 0
`
		result := rewrite(t, contents)
		assert.Contains(result, "fresh: 1")
		assert.NotContains(result, "stale")
	})

	t.Run("nil-node", func(t *testing.T) {
		assert.Nil(RelocateExamples(nil))
	})
}

func TestRelocateExamplesEndToEnd(t *testing.T) {
	assert := assert2.New(t)

	contents := `paths:
  /x:
    post:
      requestBody:
        schema: {type: object, examples: {sample: {foo: 1}}}
        content:
          application/json: {schema: {type: object}}
`
	expected := `paths:
  /x:
    post:
      requestBody:
        schema:
          type: object
        content:
          application/json:
            schema:
              type: object
            examples:
              sample:
                foo: 1
`
	assert.Equal(expected, rewrite(t, contents))
}

func TestMapHelpers(t *testing.T) {
	assert := assert2.New(t)

	parseMapping := func(contents string) *yaml.Node {
		doc, err := Parse([]byte(contents))
		if err != nil {
			t.Fatal(err)
		}
		return doc.Content[0]
	}

	t.Run("map-value", func(t *testing.T) {
		node := parseMapping("a: 1\nb: 2\n")
		assert.Equal("2", MapValue(node, "b").Value)
		assert.Nil(MapValue(node, "c"))
		assert.Nil(MapValue(nil, "a"))
		assert.Nil(MapValue(node.Content[1], "a"))
	})

	t.Run("set-key-appends", func(t *testing.T) {
		node := parseMapping("a: 1\n")
		SetKey(node, "b", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "x"})
		assert.Len(node.Content, 4)
		assert.Equal("b", node.Content[2].Value)
		assert.Equal("x", MapValue(node, "b").Value)
	})

	t.Run("set-key-replaces", func(t *testing.T) {
		node := parseMapping("a: 1\nb: 2\n")
		SetKey(node, "a", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "x"})
		assert.Len(node.Content, 4)
		assert.Equal("x", MapValue(node, "a").Value)
	})

	t.Run("remove-key", func(t *testing.T) {
		node := parseMapping("a: 1\nb: 2\nc: 3\n")
		RemoveKey(node, "b")
		assert.Len(node.Content, 4)
		assert.Nil(MapValue(node, "b"))
		assert.Equal("a", node.Content[0].Value)
		assert.Equal("c", node.Content[2].Value)

		RemoveKey(node, "missing")
		assert.Len(node.Content, 4)
	})
}

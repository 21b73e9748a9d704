package validators

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// CheckOpenAPI parses the contents as an OpenAPI 3 document and validates it.
// Used as an after-the-fact sanity check on rewritten files: the rewrite
// itself never depends on the document being a complete spec.
func CheckOpenAPI(data []byte) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return err
	}

	return doc.Validate(loader.Context)
}

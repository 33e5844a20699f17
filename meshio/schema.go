package meshio

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of Document.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(Document))
	schema.Title = "roomnav map document"
	schema.Description = "Rooms and portals of a decomposed occupancy grid"
	return schema
}

// WriteSchema writes the indented schema to path.
func WriteSchema(path string) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("meshio: marshal schema: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

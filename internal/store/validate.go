package store

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_store.schema.json
var storeSchema string

// ValidateStoreJSON checks raw store-file content against the embedded
// JSON Schema before it is accepted. Used both when the file store opens an
// owner's file and by the check command against exported files.
func ValidateStoreJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(storeSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate store file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		details = append(details, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return &CorruptStoreError{Details: details}
}

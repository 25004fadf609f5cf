package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const recordSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "deadline"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "deadline": {"type": "string"},
    "completed": {"type": "boolean"}
  }
}`

var recordSchema = jsonschema.MustCompileString("tasker://record.schema.json", recordSchemaJSON)

// DecodeRecord validates one raw JSON record against the record schema and
// decodes it. Violations are reported as SchemaError.
func DecodeRecord(data []byte) (Record, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Record{}, WrapError(KindSchema, "record is not valid JSON", err)
	}

	if err := recordSchema.Validate(doc); err != nil {
		return Record{}, schemaError(err)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, WrapError(KindSchema, "decode record", err)
	}
	return r, nil
}

// schemaError reduces a jsonschema validation error to its first leaf cause.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return WrapError(KindSchema, "invalid record", err)
	}
	leaf := firstLeaf(ve)
	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if field == "" {
		return NewError(KindSchema, fmt.Sprintf("invalid record: %s", leaf.Message))
	}
	return NewError(KindSchema, fmt.Sprintf("invalid record: %s: %s", field, leaf.Message))
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

package api

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// eventCreateSchema constrains the POST /api/events body. Status is
// deliberately absent: events always start as pending, and unknown extra
// fields are ignored rather than rejected.
const eventCreateSchema = `{
	"type": "object",
	"required": ["url", "domain", "detection_type", "summary", "detections"],
	"properties": {
		"url": {"type": "string"},
		"domain": {"type": "string"},
		"content_type": {"type": "string"},
		"detection_type": {"type": "string"},
		"summary": {"type": "string"},
		"detections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type"],
				"properties": {
					"type": {"type": "string"},
					"masked": {"type": ["string", "null"]}
				}
			}
		},
		"content_hash": {"type": ["string", "null"]},
		"message": {"type": ["string", "null"]}
	}
}`

var eventCreateCompiled = mustCompileSchema("event_create.json", eventCreateSchema)

func mustCompileSchema(name, raw string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("schema unmarshal error: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("schema compile error: %v", err))
	}
	sch, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("schema compile error: %v", err))
	}
	return sch
}

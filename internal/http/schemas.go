package http

import "github.com/xeipuuv/gojsonschema"

// Request bodies are type-checked against an envelope schema before the
// domain validators run, so handlers never see a string where a number
// belongs. The envelope key itself is optional: a missing entity object
// validates as empty and the field validator reports what is required.

const userEnvelopeSchema = `{
	"type": "object",
	"properties": {
		"user": {
			"type": "object",
			"properties": {
				"username": {"type": ["string", "null"]},
				"email": {"type": ["string", "null"]},
				"password": {"type": ["string", "null"]},
				"password2": {"type": ["string", "null"]},
				"is_active": {"type": ["boolean", "null"]},
				"is_admin": {"type": ["boolean", "null"]}
			}
		}
	}
}`

const fundEnvelopeSchema = `{
	"type": "object",
	"properties": {
		"fund": {
			"type": "object",
			"properties": {
				"user": {"type": ["integer", "object", "null"]},
				"code": {"type": ["string", "null"]},
				"name": {"type": ["string", "null"]}
			}
		}
	}
}`

const genreEnvelopeSchema = `{
	"type": "object",
	"properties": {
		"genre": {
			"type": "object",
			"properties": {
				"user": {"type": ["integer", "object", "null"]},
				"code": {"type": ["string", "null"]},
				"name": {"type": ["string", "null"]},
				"is_incoming": {"type": ["boolean", "null"]},
				"fund": {"type": ["integer", "object", "null"]}
			}
		}
	}
}`

const paymentEnvelopeSchema = `{
	"type": "object",
	"properties": {
		"payment": {
			"type": "object",
			"properties": {
				"user": {"type": ["integer", "object", "null"]},
				"date": {"type": ["string", "null"]},
				"genre": {"type": ["integer", "object", "null"]},
				"fund": {"type": ["integer", "object", "null"]},
				"incoming": {"type": ["number", "null"]},
				"outgoing": {"type": ["number", "null"]},
				"remarks": {"type": ["string", "null"]}
			}
		}
	}
}`

func loadSchemas() map[string]*gojsonschema.Schema {
	schemas := map[string]*gojsonschema.Schema{}
	for name, raw := range map[string]string{
		"user":    userEnvelopeSchema,
		"fund":    fundEnvelopeSchema,
		"genre":   genreEnvelopeSchema,
		"payment": paymentEnvelopeSchema,
	} {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(err)
		}
		schemas[name] = schema
	}
	return schemas
}

// internal/marketplace/schema.go
package marketplace

import (
	"github.com/xeipuuv/gojsonschema"
)

// listingSchema is deliberately lenient: every field is optional and
// unknown fields are allowed. A mismatch only produces a warning — the
// normalizer's defaults mask missing or mistyped fields.
var listingSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title":       map[string]interface{}{"type": []string{"string", "null"}},
		"headline":    map[string]interface{}{"type": []string{"string", "null"}},
		"description": map[string]interface{}{"type": []string{"string", "null"}},
		"capacity":    map[string]interface{}{"type": []string{"integer", "null"}},
		"price_display": map[string]interface{}{
			"type": []string{"string", "null"},
		},
		"departure_anytime": map[string]interface{}{"type": []string{"boolean", "null"}},
		"charter_type":      map[string]interface{}{"type": []string{"string", "null"}},
		"location": map[string]interface{}{
			"type": []string{"object", "null"},
			"properties": map[string]interface{}{
				"name": map[string]interface{}{"type": []string{"string", "null"}},
			},
		},
		"rate": map[string]interface{}{
			"type": []string{"object", "null"},
			"properties": map[string]interface{}{
				"display_price": map[string]interface{}{"type": []string{"string", "null"}},
			},
		},
		"amenities":        map[string]interface{}{"type": []string{"array", "null"}},
		"trip_types":       map[string]interface{}{"type": []string{"array", "null"}},
		"languages_spoken": map[string]interface{}{"type": []string{"array", "null"}},
		"highlights":       map[string]interface{}{"type": []string{"array", "null"}},
	},
	"additionalProperties": true,
}

// warnOnSchemaMismatch validates the raw listing document against the
// lenient shape and logs any findings. It never fails the fetch.
func (c *Client) warnOnSchemaMismatch(listingID string, body []byte) {
	schemaLoader := gojsonschema.NewGoLoader(listingSchema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		c.logger.Debug("listing schema validation skipped", map[string]interface{}{
			"listingId": listingID,
			"error":     err.Error(),
		})
		return
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		c.logger.Warn("listing payload shape unexpected", map[string]interface{}{
			"listingId": listingID,
			"issues":    issues,
		})
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpecSource returns the OpenAPI document as JSON.
type SpecSource func() string

// SpecAsYAML converts the JSON document to YAML.
func SpecAsYAML(spec SpecSource) ([]byte, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(spec()), &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// SwaggerHandler serves the document as JSON when the client asks for it
// and as YAML otherwise.
func SwaggerHandler(spec SpecSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept"), "application/json") || r.URL.Query().Get("format") == "json" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(spec()))
			return
		}

		yamlSpec, err := SpecAsYAML(spec)
		if err != nil {
			Error(w, http.StatusInternalServerError, "Failed to convert swagger spec to YAML")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(yamlSpec)
	}
}

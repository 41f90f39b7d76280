package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"watchdate/internal/core/version"
)

//go:embed openapi.json
var openapiDoc string

// docReader is a seam so tests can inject a broken document
var docReader = func() string { return openapiDoc }

// serveDocJSON serves the OpenAPI document with the build version stamped into info
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
		if _, ok := spec["servers"]; !ok {
			spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

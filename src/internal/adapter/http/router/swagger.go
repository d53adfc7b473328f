package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Account Console API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Account Console Runner",
    "version": "1.0.0"
  },
  "paths": {
    "/sessions": {
      "post": {
        "summary": "Run a console session against scripted input",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/RunSessionRequest" }
            }
          }
        },
        "responses": {
          "200": { "description": "Session exited or input ran out", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/RunSessionEnvelope" } } } },
          "400": { "description": "Invalid body or validation failed" },
          "405": { "description": "Method not allowed" },
          "408": { "description": "Session timed out" }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "RunSessionRequest": {
        "type": "object",
        "required": ["input"],
        "properties": {
          "input": { "type": "array", "items": { "type": "string" }, "maxItems": 1000 }
        }
      },
      "RunSessionResponse": {
        "type": "object",
        "properties": {
          "transcript": { "type": "string" },
          "exited": { "type": "boolean" },
          "durationMs": { "type": "integer", "format": "int64" }
        }
      },
      "RunSessionEnvelope": {
        "type": "object",
        "properties": {
          "success": { "type": "boolean" },
          "message": { "type": "string" },
          "data": { "$ref": "#/components/schemas/RunSessionResponse" },
          "errors": { "type": "array", "items": { "type": "string" } }
        }
      }
    }
  }
}`

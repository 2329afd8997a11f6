// Package docs registers the OpenAPI spec with swag at init time so the
// /swagger.json endpoint can serve it without the generated swagger/ output
// being present on disk.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/jpsantiago/aralplan"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Check server health",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Get detailed server status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/plan/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Generate a lesson plan",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"},
                    "502": {"description": "Bad Gateway"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/plan": {
            "get": {
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Get the current lesson plan",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Clear the current lesson plan",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/plan/section": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Edit a procedure section",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/plan/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Get the DLL header info",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Set the DLL header info",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/pdf/extract": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["pdf"],
                "summary": "Extract text from a PDF",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "413": {"description": "Request Entity Too Large"}
                }
            }
        },
        "/api/plan/export/text": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["export"],
                "summary": "Export the plan as plain text",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/plan/export/docx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.wordprocessingml.document"],
                "tags": ["export"],
                "summary": "Export the plan as a Word document",
                "parameters": [
                    {"type": "string", "default": "daily", "description": "daily or weekly", "name": "layout", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/plan/export/xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["export"],
                "summary": "Export the plan as a spreadsheet",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/plan/print": {
            "get": {
                "produces": ["text/html"],
                "tags": ["export"],
                "summary": "Render the printable plan",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8787",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Aralplan API",
	Description:      "DepEd lesson plan generation API: schema-constrained drafting, section editing, and DLL exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

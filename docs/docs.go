// Package docs holds the swagger document in the layout `swag init` emits.
// It is maintained by hand: keep docTemplate in sync with the annotations on
// the handlers in internal/http/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/applications": {
            "get": {
                "description": "Application records shown on the Applications page, in declared order.",
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List application domains",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/service.ApplicationListResult"}
                    }
                }
            }
        },
        "/api/pages": {
            "get": {
                "description": "Navigation entries in display order.",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "List pages",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/service.PageListResult"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Renders every page once; 503 if any fails.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.Application": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "examples": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "image": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "model.PageInfo": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.ApplicationListResult": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/model.Application"}
                },
                "total": {"type": "integer"}
            }
        },
        "service.PageListResult": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/model.PageInfo"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MCP Site API",
	Description:      "Static pages and content API for the phase-change materials site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

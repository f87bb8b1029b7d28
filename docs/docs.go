// Package docs registers the OpenAPI description of the JSON API with swag.
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
        "/api/calculations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "List stored calculations, newest first",
                "parameters": [
                    {"type": "integer", "description": "page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Calculation"}}},
                    "501": {"description": "history disabled", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/calculations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Get a stored calculation",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "calculation id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Calculation"}},
                    "400": {"description": "bad id", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/day-count": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["day-count"],
                "summary": "Count the days between two dates",
                "parameters": [
                    {"description": "dates in YYYY-MM-DD form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.DayCountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Calculation"}},
                    "400": {"description": "validation error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Calculation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "start_date": {"type": "string", "example": "2023-01-01"},
                "end_date": {"type": "string", "example": "2023-12-31"},
                "days": {"type": "integer", "example": 365},
                "method": {"type": "string", "example": "legacy"},
                "created_at": {"type": "string"}
            }
        },
        "domain.DayCountRequest": {
            "type": "object",
            "properties": {
                "start_date": {"type": "string", "example": "2023-01-01"},
                "end_date": {"type": "string", "example": "2023-12-31"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
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
	Title:            "Date Day Count",
	Description:      "Counts the days between two calendar dates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

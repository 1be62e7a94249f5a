// Package docs holds the OpenAPI document served at /swagger/*any.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "Banner", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/items": {
            "get": {
                "description": "Returns every item in insertion order.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "List items",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.itemResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Creates a new item with the provided name and optional description.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Create a new item",
                "parameters": [
                    {"description": "Item data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/items/{id}": {
            "get": {
                "description": "Returns a single item by its ID.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Get item detail",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "description": "Partially updates an item. Omitted or null fields keep their stored value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Update an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "description": "Permanently removes an item by ID.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Delete an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "patch": {
                "description": "Partially updates an item. Omitted or null fields keep their stored value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Update an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.createReq": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "description": {"type": "string", "maxLength": 1000},
                "name": {"type": "string", "maxLength": 255}
            }
        },
        "http.itemResp": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "maxLength": 1000},
                "name": {"type": "string", "maxLength": 255}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Items CRUD API",
	Description:      "CRUD API over a single persisted Item resource.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

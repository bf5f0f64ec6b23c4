// Package docs holds the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/registry/v1/courses": {
            "get": {
                "summary": "List courses",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/api/registry/v1/courses/{course_id}/classes": {
            "post": {
                "summary": "Create a class under a course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "course_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Course not found"},
                    "409": {"description": "Class number conflict"}
                }
            }
        },
        "/api/registry/v1/classes/{class_id}/enrollments": {
            "post": {
                "summary": "Enroll a user into a class",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "class_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Already enrolled"}
                }
            }
        },
        "/api/registry/v1/rooms": {
            "post": {
                "summary": "Create a room",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Room number taken"}
                }
            }
        },
        "/api/scheduling/v1/periods": {
            "get": {
                "summary": "List periods with optional filters",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "integer"},
                    {"name": "room_id", "in": "query", "type": "integer"},
                    {"name": "class_id", "in": "query", "type": "integer"},
                    {"name": "slot", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Schedule a period",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Referenced teacher, room or class not found"}
                }
            }
        },
        "/api/scheduling/v1/periods/{period_id}/verification": {
            "post": {
                "summary": "Register the room verification for a period",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "period_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Caller lacks an elevated class role"},
                    "409": {"description": "Verification already registered"}
                }
            }
        },
        "/api/scheduling/v1/periods/{period_id}/attendance": {
            "post": {
                "summary": "Record attendance for a user in a period",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "period_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Recorded"},
                    "403": {"description": "Caller lacks an elevated class role"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SyncoApi",
	Description:      "Academic registry and scheduling API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

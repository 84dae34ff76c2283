// Package docs holds the committed OpenAPI spec served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o cmd/api/docs` after
// changing handler annotations.
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
        "/generateQuestions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Generate quiz questions",
                "description": "Generates novel quiz questions for a topic, deduplicated against recently served ones, optionally translated into a second language",
                "parameters": [
                    {
                        "description": "Quiz parameters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.GenerateQuestionsRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerateQuestionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "dto.GenerateQuestionsRequest": {
            "type": "object",
            "required": ["className", "courseName", "sectionName", "subSectionName", "languageName", "type", "difficultyName"],
            "properties": {
                "className": {"type": "string"},
                "courseName": {"type": "string"},
                "sectionName": {"type": "string"},
                "subSectionName": {"type": "string"},
                "languageName": {"type": "string"},
                "languageName1": {"type": "string"},
                "type": {"type": "string", "enum": ["mcq", "true_false", "short", "essay"]},
                "difficultyName": {"type": "string"}
            }
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "answer": {"type": "string"}
            }
        },
        "dto.GenerateQuestionsResponse": {
            "type": "object",
            "properties": {
                "result": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "result1": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Quizcraft API",
	Description:      "Generates deduplicated, optionally bilingual quiz questions from a generative language model.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

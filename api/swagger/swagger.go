package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Mentor Match API",
        "description": "Mentor directory and student to mentor recommendations",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Mentors", "description": "Mentor directory"},
        {"name": "Recommendations", "description": "Ranked mentors and match explanations"}
    ],
    "paths": {
        "/mentors": {
            "get": {
                "tags": ["Mentors"],
                "summary": "List mentors",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string", "description": "Exact subject taught"},
                    {"name": "location", "in": "query", "type": "string", "description": "Location contains"},
                    {"name": "level", "in": "query", "type": "string", "description": "Preferred student level"},
                    {"name": "search", "in": "query", "type": "string", "description": "Search name, bio, role or subject"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["full_name", "rating", "total_sessions", "created_at"]},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/mentors/{id}": {
            "get": {
                "tags": ["Mentors"],
                "summary": "Get mentor detail",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/recommendations": {
            "get": {
                "tags": ["Recommendations"],
                "summary": "Recommended mentors for a student",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer", "minimum": 1, "maximum": 50},
                    {"name": "subjects", "in": "query", "type": "string", "description": "Comma separated subjects"},
                    {"name": "languages", "in": "query", "type": "string", "description": "Comma separated languages"},
                    {"name": "levels", "in": "query", "type": "string", "description": "Comma separated student levels"},
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "sessionDuration", "in": "query", "type": "string", "enum": ["30 mins - 1 hour", "1 hour", "1-2 hours", "2+ hours"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/recommendations/export": {
            "get": {
                "tags": ["Recommendations"],
                "summary": "Download the recommendation list",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "limit", "in": "query", "type": "integer", "minimum": 1, "maximum": 50}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/matches/{mentorId}": {
            "get": {
                "tags": ["Recommendations"],
                "summary": "Explain the match between a student and a mentor",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "mentorId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Mentor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "full_name": {"type": "string"},
                "location": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}},
                "short_bio": {"type": "string"},
                "professional_role": {"type": "string"},
                "session_duration": {"type": "string"},
                "preferred_language": {"type": "array", "items": {"type": "string"}},
                "teaching_experience": {"type": "string"},
                "preferred_student_levels": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number"},
                "total_sessions": {"type": "integer"}
            }
        },
        "RecommendationItem": {
            "type": "object",
            "properties": {
                "rank": {"type": "integer"},
                "mentor": {"$ref": "#/definitions/Mentor"},
                "score": {"type": "number"},
                "reasons": {"type": "array", "items": {"type": "string"}}
            }
        },
        "RecommendationResponse": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "limit": {"type": "integer"},
                "candidates": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/RecommendationItem"}},
                "generatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "MatchExplanation": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "mentorId": {"type": "string"},
                "score": {"type": "number"},
                "reasons": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

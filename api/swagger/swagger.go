// Package swagger carries the hand-maintained OpenAPI document served at
// /docs in non-production environments.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Phrygian Way Registration API",
        "description": "Trail registration intake, draft sync and form analytics",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "registration", "description": "Registration intake"},
        {"name": "draft", "description": "Server-side draft sync"},
        {"name": "analytics", "description": "Form interaction events"},
        {"name": "routes", "description": "Trail catalog"},
        {"name": "admin", "description": "Registration dashboard"}
    ],
    "paths": {
        "/registration": {
            "post": {
                "tags": ["registration"],
                "summary": "Submit a trail registration",
                "parameters": [
                    {"name": "x-session-id", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmissionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/registration/draft": {
            "put": {
                "tags": ["draft"],
                "summary": "Save the in-progress draft for the session",
                "parameters": [
                    {"name": "x-session-id", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Saved"},
                    "400": {"description": "Validation failure"}
                }
            },
            "get": {
                "tags": ["draft"],
                "summary": "Load the stored draft for the session",
                "parameters": [
                    {"name": "x-session-id", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Draft envelope"},
                    "404": {"description": "No draft stored"}
                }
            },
            "delete": {
                "tags": ["draft"],
                "summary": "Discard the stored draft for the session",
                "parameters": [
                    {"name": "x-session-id", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Discarded"}
                }
            }
        },
        "/analytics/form": {
            "post": {
                "tags": ["analytics"],
                "summary": "Track a form interaction event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyticsEventRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted"},
                    "400": {"description": "Unknown event type or missing session"}
                }
            }
        },
        "/routes": {
            "get": {
                "tags": ["routes"],
                "summary": "List trail sections",
                "responses": {
                    "200": {"description": "Trail catalog", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/routes/{slug}": {
            "get": {
                "tags": ["routes"],
                "summary": "Get a trail section",
                "parameters": [
                    {"name": "slug", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Trail section"},
                    "404": {"description": "Unknown slug"}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/admin/registrations": {
            "get": {
                "tags": ["admin"],
                "summary": "List registrations",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Paginated registrations", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/registrations/export": {
            "get": {
                "tags": ["admin"],
                "summary": "Export registrations as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "required": true, "enum": ["csv", "pdf"]},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Signed download link"}
                }
            }
        },
        "/admin/analytics/funnel": {
            "get": {
                "tags": ["admin"],
                "summary": "Form funnel summary",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Aggregated event counts"}
                }
            }
        },
        "/exports/download": {
            "get": {
                "tags": ["admin"],
                "summary": "Download a rendered export",
                "parameters": [
                    {"name": "token", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "SubmissionRequest": {
            "type": "object",
            "required": ["interested_in", "timeframe", "group_type", "first_name", "last_name", "email", "phone", "fitness_level", "hiking_experience", "motivation", "goals", "how_did_you_hear", "terms_accepted", "data_processing"],
            "properties": {
                "interested_in": {"type": "string", "enum": ["full_trail", "eastern", "southern", "western", "undecided"]},
                "timeframe": {"type": "string", "enum": ["next_3_months", "3_6_months", "6_12_months", "just_exploring"]},
                "group_type": {"type": "string", "enum": ["solo", "couple", "friends", "family", "organized"]},
                "first_name": {"type": "string", "minLength": 2},
                "last_name": {"type": "string", "minLength": 2},
                "email": {"type": "string"},
                "phone": {"type": "string", "minLength": 10},
                "country": {"type": "string"},
                "age": {"type": "integer", "minimum": 18, "maximum": 75},
                "emergency_contact": {"$ref": "#/definitions/EmergencyContact"},
                "fitness_level": {"type": "integer", "minimum": 1, "maximum": 5},
                "hiking_experience": {"type": "string", "enum": ["none", "day_hikes", "multi_day", "expert"]},
                "longest_hike": {"type": "number"},
                "medical_conditions": {"type": "array", "items": {"type": "string"}},
                "dietary_requirements": {"type": "array", "items": {"type": "string"}},
                "special_needs": {"type": "string"},
                "preferred_dates": {"type": "array", "items": {"type": "string"}},
                "motivation": {"type": "string"},
                "goals": {"type": "array", "items": {"type": "string"}},
                "how_did_you_hear": {"type": "string"},
                "newsletter": {"type": "boolean"},
                "terms_accepted": {"type": "boolean"},
                "data_processing": {"type": "boolean"}
            }
        },
        "EmergencyContact": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "relationship": {"type": "string"}
            }
        },
        "AnalyticsEventRequest": {
            "type": "object",
            "required": ["event_type"],
            "properties": {
                "event_type": {"type": "string", "enum": ["form_started", "step_completed", "step_abandoned", "validation_error", "exit_intent", "form_submitted"]},
                "event_data": {"type": "object"},
                "session_id": {"type": "string"},
                "referrer": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "FieldError": {
            "type": "object",
            "properties": {
                "path": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
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
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/FieldError"}},
                "error": {"$ref": "#/definitions/APIError"},
                "message": {"type": "string"},
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

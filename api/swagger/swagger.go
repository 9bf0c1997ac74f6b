package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Portal API",
        "description": "Read-mostly API over the institute's student records.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1/routes",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "tags": [
        {"name": "Authentication", "description": "Student login"},
        {"name": "Enrollment", "description": "Subject status by batch"},
        {"name": "Timetable", "description": "Batch schedules"},
        {"name": "Attendance", "description": "Attendance log"},
        {"name": "Fees", "description": "Fee ledger and statements"},
        {"name": "Courses", "description": "Course overview and marks"},
        {"name": "Profile", "description": "Student profile"}
    ],
    "paths": {
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/get-batch": {
            "get": {
                "tags": ["Enrollment"],
                "summary": "List a student's subjects by status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name_contactid", "in": "query", "type": "string", "required": true},
                    {"name": "status", "in": "query", "type": "string", "required": true, "enum": ["Pending", "Ongoing", "Completed"]},
                    {"name": "course", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/batch-timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Batch timetable of a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "name_contactid", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/batch-timings": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Batch times a student has attendance in",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "name_contactid", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Attendance of one subject batch",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name_contactid", "in": "query", "type": "string", "required": true},
                    {"name": "batchtime", "in": "query", "type": "string", "required": true},
                    {"name": "Subject", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No records", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/fee-details": {
            "get": {
                "tags": ["Fees"],
                "summary": "Fee payment history of a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "name_contactid", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/fee-details/export": {
            "get": {
                "tags": ["Fees"],
                "summary": "Download a fee statement",
                "produces": ["text/csv", "application/pdf"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name_contactid", "in": "query", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "required": true, "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Statement file", "schema": {"type": "file"}},
                    "404": {"description": "No fee records", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/course-details": {
            "get": {
                "tags": ["Courses"],
                "summary": "Catalog subjects of a student's courses with status",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "name_contactid", "in": "query", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/marks": {
            "get": {
                "tags": ["Courses"],
                "summary": "Exam marks of a student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "name_contactid", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/update-profile": {
            "put": {
                "tags": ["Profile"],
                "summary": "Update a student's profile",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProfileUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Nothing to update", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ProfileUpdateRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "contact": {"type": "string"},
                "username": {"type": "string"},
                "course": {"type": "string"},
                "address": {"type": "string"},
                "branch": {"type": "string"},
                "password": {"type": "string"},
                "status": {"type": "string"},
                "EmailId": {"type": "string"}
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
                "status": {"type": "integer"},
                "details": {"type": "string"}
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

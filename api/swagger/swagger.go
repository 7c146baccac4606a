package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ShiftDesk API",
        "description": "Team shift scheduling and availability API",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule", "description": "Week matrix, currently working, availability"},
        {"name": "Shifts", "description": "Shift assignment management (admin)"},
        {"name": "ShiftTemplates", "description": "Shift catalogue"},
        {"name": "Tasks", "description": "Scheduled tasks and routines"},
        {"name": "Events", "description": "Personal events"}
    ],
    "paths": {
        "/schedule/week": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get the week schedule matrix",
                "parameters": [
                    {"name": "week", "in": "query", "type": "integer", "description": "Week offset from the current week"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/currently-working": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List users currently on shift",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/export": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Export the week schedule",
                "parameters": [
                    {"name": "week", "in": "query", "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/schedule/availability": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Check a user's availability on a date",
                "parameters": [
                    {"name": "userId", "in": "query", "type": "string", "required": true},
                    {"name": "date", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "User not found"}
                }
            }
        },
        "/shifts/assign": {
            "post": {
                "tags": ["Shifts"],
                "summary": "Assign a shift to a user on a date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignShiftRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Admin role required"}
                }
            }
        },
        "/shifts": {
            "delete": {
                "tags": ["Shifts"],
                "summary": "Remove a user's shift on a date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RemoveShiftRequest"}}
                ],
                "responses": {
                    "204": {"description": "Removed"}
                }
            }
        },
        "/shifts/bulk": {
            "post": {
                "tags": ["Shifts"],
                "summary": "Assign a shift to several users across several dates",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkAssignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/shifts/copy": {
            "post": {
                "tags": ["Shifts"],
                "summary": "Copy one user's shifts onto other users",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CopyShiftsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/shift-templates": {
            "get": {
                "tags": ["ShiftTemplates"],
                "summary": "List shift templates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["ShiftTemplates"],
                "summary": "Create a shift template",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/shift-templates/{id}": {
            "get": {
                "tags": ["ShiftTemplates"],
                "summary": "Get a shift template",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["ShiftTemplates"],
                "summary": "Update a shift template",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["ShiftTemplates"],
                "summary": "Delete a shift template",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/tasks/scheduled": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List the caller's scheduled tasks for a date",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Plan a scheduled task",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Task overlaps an existing task"}
                }
            }
        },
        "/tasks/scheduled/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Update a scheduled task",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a scheduled task",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/tasks/agenda": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get the caller's merged agenda for a date",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/tasks/routines": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List the caller's routine tasks",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Register a routine task",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/tasks/routines/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Update a routine task",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Deactivate a routine task",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deactivated"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List the caller's personal events",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Register a personal event",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Update a personal event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete a personal event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        }
    },
    "definitions": {
        "AssignShiftRequest": {
            "type": "object",
            "required": ["user_id", "date", "shift_template_id"],
            "properties": {
                "user_id": {"type": "string"},
                "date": {"type": "string", "example": "2024-03-04"},
                "shift_template_id": {"type": "string"}
            }
        },
        "RemoveShiftRequest": {
            "type": "object",
            "required": ["user_id", "date"],
            "properties": {
                "user_id": {"type": "string"},
                "date": {"type": "string", "example": "2024-03-04"}
            }
        },
        "BulkAssignRequest": {
            "type": "object",
            "required": ["user_ids", "dates", "shift_template_id"],
            "properties": {
                "user_ids": {"type": "array", "items": {"type": "string"}},
                "dates": {"type": "array", "items": {"type": "string"}},
                "shift_template_id": {"type": "string"}
            }
        },
        "CopyShiftsRequest": {
            "type": "object",
            "required": ["source_user_id", "target_user_ids", "start_date", "end_date"],
            "properties": {
                "source_user_id": {"type": "string"},
                "target_user_ids": {"type": "array", "items": {"type": "string"}},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
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
                "pagination": {"type": "object"},
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

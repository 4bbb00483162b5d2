package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "AcadSched API",
        "description": "Academic scheduling administration: master data, schedule versions, conflict reports, and exports",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login and session introspection"},
        {"name": "Terms", "description": "Academic term management"},
        {"name": "Departments", "description": "Departments and programs"},
        {"name": "Subjects", "description": "Subject catalog"},
        {"name": "Sections", "description": "Student sections"},
        {"name": "Rooms", "description": "Room inventory"},
        {"name": "Faculty", "description": "Faculty directory and teaching profiles"},
        {"name": "TimeBlocks", "description": "Daily scheduling grid"},
        {"name": "Versions", "description": "Schedule version lifecycle"},
        {"name": "Classes", "description": "Class offerings and meetings"},
        {"name": "Reports", "description": "Conflicts, faculty load, room utilization, schedules"},
        {"name": "Policies", "description": "Scheduling policies with GLOBAL fallback"},
        {"name": "ChangeRequests", "description": "Schedule change request workflow"},
        {"name": "System", "description": "Health and runtime metrics"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and issue an access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current token claims",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/terms": {
            "get": {
                "tags": ["Terms"],
                "summary": "List terms",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Terms"],
                "summary": "Create term",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/terms/active": {
            "get": {
                "tags": ["Terms"],
                "summary": "Get the active term",
                "responses": {"200": {"description": "OK"}, "404": {"description": "No active term"}}
            }
        },
        "/versions": {
            "get": {
                "tags": ["Versions"],
                "summary": "List schedule versions for a term and department",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Versions"],
                "summary": "Create a draft schedule version",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/versions/{id}/activate": {
            "post": {
                "tags": ["Versions"],
                "summary": "Activate a version, demoting any sibling active version",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Version locked or archived"}}
            }
        },
        "/versions/{id}/lock": {
            "post": {
                "tags": ["Versions"],
                "summary": "Lock a version against further edits",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/versions/{id}/archive": {
            "post": {
                "tags": ["Versions"],
                "summary": "Archive a version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List class offerings",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create class offering",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Version locked"}}
            }
        },
        "/meetings": {
            "post": {
                "tags": ["Classes"],
                "summary": "Schedule a class meeting with a conflict pre-check",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Meeting would introduce scheduling conflicts"}
                }
            }
        },
        "/reports/conflicts": {
            "get": {
                "tags": ["Reports"],
                "summary": "Detect room, faculty, and section conflicts for a version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/faculty-load": {
            "get": {
                "tags": ["Reports"],
                "summary": "Weekly faculty load with policy ceilings",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/room-utilization": {
            "get": {
                "tags": ["Reports"],
                "summary": "Room utilization against the bookable week",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/schedule": {
            "get": {
                "tags": ["Reports"],
                "summary": "Denormalized schedule rows for a version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/{report}/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a report as CSV or PDF",
                "responses": {"200": {"description": "File attachment"}}
            }
        },
        "/change-requests": {
            "get": {
                "tags": ["ChangeRequests"],
                "summary": "List change requests",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["ChangeRequests"],
                "summary": "Submit a change request",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/change-requests/{id}/review": {
            "post": {
                "tags": ["ChangeRequests"],
                "summary": "Approve or reject a pending change request",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Already reviewed"}}
            }
        },
        "/policies/{key}": {
            "get": {
                "tags": ["Policies"],
                "summary": "Resolve a policy value, falling back to GLOBAL",
                "responses": {"200": {"description": "OK"}, "404": {"description": "No value at any scope"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "Ready"}, "503": {"description": "Dependency unavailable"}}
            }
        }
    },
    "definitions": {
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
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

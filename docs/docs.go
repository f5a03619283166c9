// Package docs holds the Swagger document served under /swagger/. It mirrors
// the handler annotations; regenerate with swag init -g cmd/server/main.go.
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
        "/click": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds one click and 1 + sum(increment x quantity) points to the authenticated player",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Click",
                "responses": {
                    "200": {"description": "Save after the click", "schema": {"$ref": "#/definitions/handlers.ClickResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/leaderboard": {
            "get": {
                "description": "Players ordered by score descending. limit=0 returns every player.",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Leaderboard",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Maximum number of entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Ranked players", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LeaderboardEntry"}}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Authenticate user and return JWT token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {"description": "Login Request", "name": "loginRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "JWT token returned", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns score, clicks, click value and owned upgrades of the authenticated player",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Get own game state",
                "responses": {
                    "200": {"description": "Game state", "schema": {"$ref": "#/definitions/handlers.StateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "Creates a user together with an empty save. Username must be unique. Password is hashed before storing.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration request", "name": "registerRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "User successfully registered", "schema": {"$ref": "#/definitions/handlers.RegisterResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Username already exists", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/upgrades": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every upgrade in catalog order",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "List upgrades",
                "responses": {
                    "200": {"description": "Upgrade catalog", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UpgradeDB"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/upgrades/{id}/purchase": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Deducts the upgrade cost from the score and grants one unit. Fails without changes when the score is too low.",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Purchase upgrade",
                "parameters": [
                    {"type": "integer", "description": "Upgrade id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Game state after the purchase", "schema": {"$ref": "#/definitions/handlers.StateResponse"}},
                    "400": {"description": "Invalid upgrade id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Upgrade not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Not enough points", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ClickResponse": {
            "type": "object",
            "properties": {
                "score": {"type": "integer"},
                "clicks": {"type": "integer"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "handlers.StateResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "score": {"type": "integer"},
                "clicks": {"type": "integer"},
                "click_value": {"type": "integer"},
                "upgrades": {"type": "array", "items": {"$ref": "#/definitions/models.OwnedUpgrade"}}
            }
        },
        "models.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "score": {"type": "integer"},
                "clicks": {"type": "integer"}
            }
        },
        "models.OwnedUpgrade": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "cost": {"type": "integer"},
                "increment": {"type": "integer"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "purchased_at": {"type": "string"}
            }
        },
        "models.UpgradeDB": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "cost": {"type": "integer"},
                "increment": {"type": "integer"},
                "description": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "clicker API",
	Description:      "Clicker game: accounts, clicks, upgrades and leaderboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

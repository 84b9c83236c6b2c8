// Package docs регистрирует swagger спецификацию API для http-swagger.
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
        "/auth/sign-in": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Аутентификация пользователя",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/requestresponse.SignInRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TokensPair"}},
                    "401": {"description": "Неверный email или пароль"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Обновление access токена",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/requestresponse.RefreshTokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TokensPair"}},
                    "400": {"description": "Невалидный refresh токен", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "403": {"description": "Refresh токен отозван", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}},
                    "404": {"description": "Пользователь не найден", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Выход",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/requestresponse.RefreshTokenRequest"}}],
                "responses": {"200": {"description": "Logged out successfully", "schema": {"type": "string"}}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["Authentication"],
                "summary": "Текущий пользователь",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.CurrentUserResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/user/registration": {
            "post": {
                "tags": ["Users"],
                "summary": "Регистрация нового пользователя",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/requestresponse.RegisterRequest"}}],
                "responses": {
                    "200": {"description": "User added", "schema": {"type": "string"}},
                    "400": {"description": "Ошибки валидации", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Email занят", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/user/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["Users"],
                "summary": "Получение пользователя по id",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/user/email/{email}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["Users"],
                "summary": "Получение пользователя по email",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "email", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/requestresponse.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/requestresponse.ErrorResponse"}}
                }
            }
        },
        "/api/posts/fetch": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["Posts"],
                "summary": "Загрузка постов из внешнего источника",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Post"}}}}
            }
        },
        "/api/posts": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["Posts"],
                "summary": "Все посты",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Post"}}}}
            }
        }
    },
    "definitions": {
        "model.TokensPair": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "refreshToken": {"type": "string"}}
        },
        "model.Post": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "title": {"type": "string"}, "body": {"type": "string"}}
        },
        "requestresponse.SignInRequest": {
            "type": "object",
            "properties": {"email": {"type": "string", "example": "a@x.com"}, "password": {"type": "string", "example": "secret"}}
        },
        "requestresponse.RefreshTokenRequest": {
            "type": "object",
            "properties": {"refreshToken": {"type": "string"}}
        },
        "requestresponse.RegisterRequest": {
            "type": "object",
            "properties": {"firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "requestresponse.CurrentUserResponse": {
            "type": "object",
            "properties": {"userId": {"type": "integer"}, "email": {"type": "string"}}
        },
        "requestresponse.UserResponse": {
            "type": "object",
            "properties": {"userId": {"type": "integer"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "requestresponse.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "object", "properties": {"code": {"type": "integer"}, "text": {"type": "string"}}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "auth-web-server",
	Description:      "REST API регистрации, аутентификации по JWT и загрузки постов",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

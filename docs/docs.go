// Package docs содержит swagger спецификацию API.
// Обновляется командой: swag init -g cmd/web/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup/{userType}": {
            "post": {
                "tags": ["auth"],
                "summary": "Регистрация пользователя",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "BUYER | REALTOR | ADMIN", "name": "userType", "in": "path", "required": true},
                    {"description": "Данные пользователя", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "401": {"description": "Нет или неверный ключ продукта", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Email уже занят", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Вход",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Email и пароль", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SigninRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "400": {"description": "Неверный пароль", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Email не зарегистрирован", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/auth/key": {
            "post": {
                "tags": ["auth"],
                "summary": "Выпустить ключ продукта",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Email и роль", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProductKeyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductKeyResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Текущий пользователь",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/home": {
            "get": {
                "tags": ["homes"],
                "summary": "Поиск объявлений",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "propertyType", "in": "query"},
                    {"type": "number", "name": "minPrice", "in": "query"},
                    {"type": "number", "name": "maxPrice", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ListingResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Создать объявление",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateListingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ListingResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/home/images": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Загрузить фотографию объявления",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UploadResponse"}}
                }
            }
        },
        "/home/{id}": {
            "get": {
                "tags": ["homes"],
                "summary": "Объявление по ID",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListingResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Изменить объявление",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateListingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListingResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Удалить объявление",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/home/inquire/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Написать риелтору",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.InquiryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.InquiryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/home/{id}/messages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Сообщения по объявлению",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.MessageResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperrors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "domain": {"type": "string"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "apperrors.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/apperrors.AppError"}}
        },
        "dto.SignupRequest": {
            "type": "object",
            "required": ["email", "name", "password", "phone"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "productKey": {"type": "string"}
            }
        },
        "dto.SigninRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.ProductKeyRequest": {
            "type": "object",
            "required": ["email", "userType"],
            "properties": {
                "email": {"type": "string"},
                "userType": {"type": "string"}
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "dto.ProductKeyResponse": {
            "type": "object",
            "properties": {"productKey": {"type": "string"}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "dto.ImageInput": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "dto.CreateListingRequest": {
            "type": "object",
            "required": ["address", "city", "propertyType"],
            "properties": {
                "address": {"type": "string"},
                "number_of_bedrooms": {"type": "integer"},
                "number_of_bathrooms": {"type": "number"},
                "city": {"type": "string"},
                "price": {"type": "number"},
                "land_size": {"type": "number"},
                "propertyType": {"type": "string"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/dto.ImageInput"}}
            }
        },
        "dto.UpdateListingRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "number_of_bedrooms": {"type": "integer"},
                "number_of_bathrooms": {"type": "number"},
                "city": {"type": "string"},
                "price": {"type": "number"},
                "land_size": {"type": "number"},
                "propertyType": {"type": "string"}
            }
        },
        "dto.ListingResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "address": {"type": "string"},
                "slug": {"type": "string"},
                "numberOfBedrooms": {"type": "integer"},
                "numberOfBathrooms": {"type": "number"},
                "city": {"type": "string"},
                "listedDate": {"type": "string"},
                "price": {"type": "number"},
                "landSize": {"type": "number"},
                "propertyType": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.InquiryRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {"message": {"type": "string"}}
        },
        "dto.InquiryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "homeId": {"type": "integer"},
                "buyerId": {"type": "integer"},
                "realtorId": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "dto.BuyerResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "buyer": {"$ref": "#/definitions/dto.BuyerResponse"}
            }
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "dto.UploadResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "contentType": {"type": "string"},
                "size": {"type": "integer"}
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
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Realty API",
	Description:      "API для объявлений о продаже недвижимости и запросов покупателей риелторам.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

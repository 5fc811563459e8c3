// Package docs holds the swagger document served under /swagger.
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
		"/users/register": {
			"post": {
				"summary": "Register a new user",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.User"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.registerRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/users/login": {
			"post": {
				"summary": "Login",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/handler.sessionResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/users/logout": {
			"post": {
				"summary": "Logout",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/accessToken": {
			"post": {
				"summary": "Rotate session tokens",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/handler.sessionResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handler.refreshRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/passwordChange": {
			"patch": {
				"summary": "Change password",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.changePasswordRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/changeAccount-details": {
			"patch": {
				"summary": "Change account details",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.User"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.changeAccountRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/birthdays/upcomingBirthdays": {
			"get": {
				"summary": "List upcoming birthdays",
				"tags": [
					"birthdays"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/domain.UpcomingBirthday"
											}
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/birthdays/registerBirthday": {
			"post": {
				"summary": "Register a birthday",
				"tags": [
					"birthdays"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Birthday"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"401": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.birthdayRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/birthdays/c/{birthdayId}": {
			"get": {
				"summary": "Get a birthday",
				"tags": [
					"birthdays"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.BirthdayDetail"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Birthday ID",
						"name": "birthdayId",
						"in": "path",
						"required": true
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"summary": "Delete a birthday",
				"tags": [
					"birthdays"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Birthday ID",
						"name": "birthdayId",
						"in": "path",
						"required": true
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"summary": "Update a birthday",
				"tags": [
					"birthdays"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Birthday"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorEnvelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Birthday ID",
						"name": "birthdayId",
						"in": "path",
						"required": true
					},
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.birthdayRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					},
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"domain.User": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"domain.Birthday": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"owner": {
					"type": "string"
				},
				"birthday": {
					"type": "string"
				},
				"upcomingBirthdays": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"domain.BirthdayDetail": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"owner": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"birthday": {
					"type": "string"
				}
			}
		},
		"domain.UpcomingBirthday": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"birthday": {
					"type": "string"
				},
				"daysLeft": {
					"type": "integer"
				}
			}
		},
		"handler.Envelope": {
			"type": "object",
			"properties": {
				"statusCode": {
					"type": "integer"
				},
				"data": {},
				"message": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				}
			}
		},
		"handler.ErrorEnvelope": {
			"type": "object",
			"properties": {
				"statusCode": {
					"type": "integer"
				},
				"data": {},
				"message": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				},
				"errors": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handler.registerRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.refreshRequest": {
			"type": "object",
			"properties": {
				"refreshToken": {
					"type": "string"
				}
			}
		},
		"handler.changePasswordRequest": {
			"type": "object",
			"properties": {
				"oldPassword": {
					"type": "string"
				},
				"newPassword": {
					"type": "string"
				},
				"confirmPassword": {
					"type": "string"
				}
			}
		},
		"handler.changeAccountRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"handler.birthdayRequest": {
			"type": "object",
			"properties": {
				"birthday": {
					"type": "string"
				}
			}
		},
		"handler.sessionResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.User"
				},
				"accessToken": {
					"type": "string"
				},
				"refreshToken": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		},
		"CookieAuth": {
			"type": "apiKey",
			"name": "accessToken",
			"in": "cookie"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0",
	Host:             "",
	BasePath:         "/api/v2",
	Schemes:          []string{},
	Title:            "Birthday Reminder API",
	Description:      "Accounts, birthdays and daily birthday reminder emails.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

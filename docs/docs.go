// Package docs registers the Swagger document of the API. Regenerate with: swag init -g cmd/todo-api/main.go
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
		"/health": {
			"get": {
				"description": "Report the status of the database and of the rate limit store",
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "Every component is UP",
						"schema": {
							"$ref": "#/definitions/model.HealthResponse"
						}
					},
					"503": {
						"description": "At least one component is DOWN",
						"schema": {
							"$ref": "#/definitions/model.HealthResponse"
						}
					}
				}
			}
		},
		"/todos": {
			"get": {
				"description": "Retrieve every todo, newest first. The total is also sent in the X-Total-Count header.",
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "List todos",
				"responses": {
					"200": {
						"description": "Todos",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/entity.Todo"
											}
										}
									}
								}
							]
						},
						"headers": {
							"X-Total-Count": {
								"type": "integer",
								"description": "Number of todos"
							}
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			},
			"post": {
				"description": "Create a todo from a text of 1 to 255 characters, surrounding blanks are trimmed",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Create a todo",
				"parameters": [
					{
						"description": "Todo creation data",
						"name": "todo",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.CreateTodoDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Created todo",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/entity.Todo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid text",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			}
		},
		"/todos/batch": {
			"post": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Create up to 100 todos in one transaction. One invalid item rolls back the whole batch.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Create todos in batch",
				"parameters": [
					{
						"description": "Todos to create",
						"name": "todos",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.BatchCreateTodoDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Created todos in request order",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/entity.Todo"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Missing, empty or oversized batch",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"401": {
						"description": "Invalid API key",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Batch rolled back",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			}
		},
		"/todos/completed": {
			"delete": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Delete completed todos",
				"responses": {
					"200": {
						"description": "Number of deleted todos",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/model.ClearCompletedResult"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Invalid API key",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			}
		},
		"/todos/stats": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Todo statistics",
				"responses": {
					"200": {
						"description": "Statistics",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/model.TodoStats"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Invalid API key",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			}
		},
		"/todos/{id}": {
			"put": {
				"description": "Update the text and/or the completion flag of a todo, absent fields are kept",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Update a todo",
				"parameters": [
					{
						"type": "integer",
						"description": "Todo ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to update",
						"name": "todo",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.UpdateTodoDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Updated todo",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/entity.Todo"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Invalid text or nothing to update",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"404": {
						"description": "Todo not found",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Delete a todo",
				"parameters": [
					{
						"type": "integer",
						"description": "Todo ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Todo deleted",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"404": {
						"description": "Todo not found",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			}
		},
		"/todos/{id}/toggle": {
			"patch": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"description": "Flip the completion flag of a todo",
				"produces": [
					"application/json"
				],
				"tags": [
					"todos"
				],
				"summary": "Toggle a todo",
				"parameters": [
					{
						"type": "integer",
						"description": "Todo ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Toggled todo",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/model.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/entity.Todo"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Invalid API key",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"404": {
						"description": "Todo not found",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					},
					"500": {
						"description": "Store failure",
						"schema": {
							"$ref": "#/definitions/model.Envelope"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"entity.Todo": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"text": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"model.BatchCreateTodoDTO": {
			"type": "object",
			"properties": {
				"todos": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.CreateTodoDTO"
					}
				}
			}
		},
		"model.ClearCompletedResult": {
			"type": "object",
			"properties": {
				"deletedCount": {
					"type": "integer"
				}
			}
		},
		"model.ComponentHealthStatus": {
			"type": "object",
			"properties": {
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"status": {
					"$ref": "#/definitions/model.HealthStatus"
				}
			}
		},
		"model.CreateTodoDTO": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				}
			}
		},
		"model.Envelope": {
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"retryAfter": {
					"type": "integer"
				},
				"stack": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				}
			}
		},
		"model.HealthResponse": {
			"type": "object",
			"properties": {
				"database": {
					"$ref": "#/definitions/model.ComponentHealthStatus"
				},
				"rateLimiter": {
					"$ref": "#/definitions/model.ComponentHealthStatus"
				},
				"status": {
					"$ref": "#/definitions/model.HealthStatus"
				}
			}
		},
		"model.HealthStatus": {
			"type": "string",
			"enum": [
				"UP",
				"DOWN",
				"UNKNOWN"
			],
			"x-enum-varnames": [
				"StatusUp",
				"StatusDown",
				"StatusUnknown"
			]
		},
		"model.TodoStats": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "integer"
				},
				"completionRate": {
					"type": "integer"
				},
				"pending": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"model.UpdateTodoDTO": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "boolean"
				},
				"text": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "X-API-Key",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:3000",
	BasePath:		 "/api",
	Schemes:		  []string{},
	Title:			"Todo API",
	Description:	  "Persisted to-do list exposed as a JSON REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

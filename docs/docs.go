// Package docs contém a especificação OpenAPI servida em /swagger.
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
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Verifica se o serviço está no ar",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/investments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Lista os ativos da carteira",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtra por tipo de ativo (STOCK, CRYPTO, FUND, FIXED_INCOME, OTHER)",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/contracts.InvestmentResponse"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Cadastra um novo ativo",
                "parameters": [
                    {
                        "description": "Dados do ativo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/contracts.InvestmentCreateRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/contracts.InvestmentResponse"},
                        "headers": {
                            "Location": {"type": "string", "description": "URI do ativo criado"}
                        }
                    },
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/investments/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Resumo agregado da carteira",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/investment.PortfolioSummary"}
                    }
                }
            }
        },
        "/investments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Busca um ativo pelo id",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/contracts.InvestmentResponse"}
                    },
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Substitui todos os campos de um ativo",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Registro completo do ativo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/contracts.InvestmentCreateRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/contracts.InvestmentResponse"}
                    },
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["investments"],
                "summary": "Remove um ativo",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "contracts.InvestmentCreateRequest": {
            "type": "object",
            "required": ["type", "symbol", "quantity"],
            "properties": {
                "type": {"type": "string", "enum": ["STOCK", "CRYPTO", "FUND", "FIXED_INCOME", "OTHER"]},
                "symbol": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1},
                "purchasePrice": {"type": "string", "example": "100.50"},
                "purchaseDate": {"type": "string", "example": "2023-01-01"}
            }
        },
        "contracts.InvestmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "type": {"type": "string"},
                "symbol": {"type": "string"},
                "quantity": {"type": "integer"},
                "purchasePrice": {"type": "string"},
                "purchaseDate": {"type": "string"},
                "totalValue": {"type": "string"}
            }
        },
        "investment.PortfolioSummary": {
            "type": "object",
            "properties": {
                "totalInvested": {"type": "string"},
                "totalByType": {
                    "type": "object",
                    "additionalProperties": {"type": "string"}
                },
                "assetCount": {"type": "integer"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Carteira API",
	Description:      "API de gerenciamento de carteira de investimentos",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

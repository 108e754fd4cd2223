// Package docs registra la especificación OpenAPI de la API en swag.
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
        "/api/v1/auth/signup": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Registrar usuario (paso 1 del onboarding)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "409": {
                        "description": "CONFLICT",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "429": {
                        "description": "RATE_LIMITED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SignupRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/auth/accept-invite": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Aceptar invitación: fija la contraseña y activa al usuario",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "429": {
                        "description": "RATE_LIMITED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AcceptInviteRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Iniciar sesión",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "429": {
                        "description": "RATE_LIMITED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Usuario autenticado con roles y empresa",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/status": {
            "get": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Avance del onboarding",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step2-company": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 2: crear empresa",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CompanySetupRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step3-plans": {
            "get": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 3: planes y paquetes de licencias",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step4-license-bucket": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 4: cotización anual",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LicenseBucketRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step5-payment": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 5: activar suscripción o prueba",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step6-add-users": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 6: invitar usuarios",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddUsersRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step7-special-permission": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 7: asignar super_plan_access",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SpecialPermissionRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 7: revocar super_plan_access",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step8-modules": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 8: habilitar módulos",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.EnableModulesRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step9-flac": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 9: políticas de acceso por campo",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FLACRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/onboarding/complete/step10-finish": {
            "post": {
                "tags": [
                    "onboarding"
                ],
                "summary": "Paso 10: finalizar onboarding",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/modules": {
            "get": {
                "tags": [
                    "access"
                ],
                "summary": "Catálogo de módulos",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/access/check": {
            "post": {
                "tags": [
                    "access"
                ],
                "summary": "Evaluar acceso",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AccessCheckRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/companies/current": {
            "get": {
                "tags": [
                    "companies"
                ],
                "summary": "Empresa actual",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/users": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Usuarios de la empresa",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Usuario por ID",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/subscriptions/current": {
            "get": {
                "tags": [
                    "subscriptions"
                ],
                "summary": "Suscripción vigente",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/subscriptions/current/receipt": {
            "get": {
                "tags": [
                    "subscriptions"
                ],
                "summary": "Descargar comprobante PDF",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/pdf"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/accounts": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Listar accounts visibles",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "workspace"
                ],
                "summary": "Crear en accounts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/accounts/{id}": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Obtener de accounts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "workspace"
                ],
                "summary": "Actualizar en accounts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "workspace"
                ],
                "summary": "Eliminar de accounts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/leads": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Listar leads visibles",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "workspace"
                ],
                "summary": "Crear en leads",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/leads/{id}": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Obtener de leads",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "workspace"
                ],
                "summary": "Actualizar en leads",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "workspace"
                ],
                "summary": "Eliminar de leads",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/projects": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Listar projects visibles",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "workspace"
                ],
                "summary": "Crear en projects",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/projects/{id}": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Obtener de projects",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "workspace"
                ],
                "summary": "Actualizar en projects",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "workspace"
                ],
                "summary": "Eliminar de projects",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/tasks": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Listar tasks visibles",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "workspace"
                ],
                "summary": "Crear en tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Obtener de tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "workspace"
                ],
                "summary": "Actualizar en tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "workspace"
                ],
                "summary": "Eliminar de tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/tickets": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Listar tickets visibles",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "limit"
                    },
                    {
                        "type": "integer",
                        "in": "query",
                        "name": "offset"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "workspace"
                ],
                "summary": "Crear en tickets",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "description": "Clave de reintento"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/tickets/{id}": {
            "get": {
                "tags": [
                    "workspace"
                ],
                "summary": "Obtener de tickets",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "workspace"
                ],
                "summary": "Actualizar en tickets",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "VALIDATION_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRecordRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "workspace"
                ],
                "summary": "Eliminar de tickets",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "AUTH_ERROR",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "403": {
                        "description": "PERMISSION_DENIED",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "NOT_FOUND",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "dto.Envelope": {
            "type": "object",
            "properties": {
                "statusCode": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "success",
                        "failure"
                    ]
                },
                "data": {},
                "errorCode": {
                    "type": "string"
                },
                "errorMessage": {
                    "type": "string"
                },
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.SignupRequest": {
            "type": "object",
            "required": [
                "email",
                "password",
                "name"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "minLength": 8
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "dto.AcceptInviteRequest": {
            "type": "object",
            "required": [
                "password",
                "token"
            ],
            "properties": {
                "password": {
                    "type": "string",
                    "maxLength": 72,
                    "minLength": 8
                },
                "token": {
                    "type": "string",
                    "maxLength": 100
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "dto.CompanySetupRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "locale": {
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                }
            }
        },
        "dto.LicenseBucketRequest": {
            "type": "object",
            "required": [
                "plan_name",
                "license_count"
            ],
            "properties": {
                "plan_name": {
                    "type": "string"
                },
                "license_count": {
                    "type": "integer",
                    "maximum": 1000000,
                    "minimum": 1
                }
            }
        },
        "dto.PaymentRequest": {
            "type": "object",
            "required": [
                "plan_name",
                "license_count"
            ],
            "properties": {
                "plan_name": {
                    "type": "string"
                },
                "license_count": {
                    "type": "integer",
                    "maximum": 1000000,
                    "minimum": 1
                },
                "payment_method": {
                    "type": "string",
                    "enum": [
                        "trial",
                        "card",
                        "invoice"
                    ]
                }
            }
        },
        "dto.InviteUserRequest": {
            "type": "object",
            "required": [
                "email",
                "name"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "SuperAdmin",
                        "Admin",
                        "User"
                    ]
                }
            }
        },
        "dto.AddUsersRequest": {
            "type": "object",
            "required": [
                "users"
            ],
            "properties": {
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InviteUserRequest"
                    }
                }
            }
        },
        "dto.SpecialPermissionRequest": {
            "type": "object",
            "required": [
                "user_id"
            ],
            "properties": {
                "user_id": {
                    "type": "string"
                }
            }
        },
        "dto.EnableModulesRequest": {
            "type": "object",
            "required": [
                "modules"
            ],
            "properties": {
                "modules": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.FieldPolicyRequest": {
            "type": "object",
            "required": [
                "role_code",
                "module",
                "field",
                "visibility"
            ],
            "properties": {
                "role_code": {
                    "type": "string"
                },
                "module": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "visibility": {
                    "type": "string",
                    "enum": [
                        "view",
                        "edit",
                        "hidden"
                    ]
                }
            }
        },
        "dto.FLACRequest": {
            "type": "object",
            "required": [
                "policies"
            ],
            "properties": {
                "policies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.FieldPolicyRequest"
                    }
                }
            }
        },
        "dto.AccessCheckRequest": {
            "type": "object",
            "required": [
                "module",
                "permission"
            ],
            "properties": {
                "user_id": {
                    "type": "string"
                },
                "module": {
                    "type": "string"
                },
                "permission": {
                    "type": "string"
                },
                "record_kind": {
                    "type": "string",
                    "enum": [
                        "account",
                        "lead",
                        "project",
                        "task",
                        "ticket"
                    ]
                },
                "record_id": {
                    "type": "string"
                }
            }
        },
        "dto.CreateRecordRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "visibility": {
                    "type": "string",
                    "enum": [
                        "owner",
                        "team",
                        "company",
                        "shared",
                        "public"
                    ]
                },
                "team_id": {
                    "type": "string"
                },
                "shared_with": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.UpdateRecordRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "visibility": {
                    "type": "string",
                    "enum": [
                        "owner",
                        "team",
                        "company",
                        "shared",
                        "public"
                    ]
                },
                "shared_with": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
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
    }
}`

// SwaggerInfo información de la API exportada para ajustes en tiempo de ejecución.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Workspace API",
	Description:      "Workspace SaaS multi-empresa: onboarding, RBAC por módulo y registros con FLAC.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

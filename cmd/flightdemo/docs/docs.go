// Package docs holds the OpenAPI document served at /swagger/doc.json. It is kept in
// the layout swag produces, so regenerating with `swag init -g cmd/flightdemo/main.go`
// replaces it in place.
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
        "/v1/airports": {
            "get": {
                "description": "Returns airport options for a free-text query longer than two characters",
                "produces": ["application/json"],
                "tags": ["airports"],
                "summary": "Airport autocomplete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Partial airport or city name",
                        "name": "query",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/flight.AirportsResponse"}
                    }
                }
            }
        },
        "/v1/airports/{code}/coordinates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["airports"],
                "summary": "Airport coordinates",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Airport code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/flight.CoordinatesResponse"}
                    }
                }
            }
        },
        "/v1/flights/search": {
            "post": {
                "description": "Validates the search form, queries the provider and returns display-ready offers",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search flights",
                "parameters": [
                    {
                        "description": "Search form",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/flight.SearchForm"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/flight.SearchResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/v1/provider/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Provider reachability",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/flight.ProviderStatusResponse"}
                    }
                }
            }
        },
        "/v1/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open a results-page session",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/flight.SessionSnapshot"}
                    }
                }
            }
        },
        "/v1/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Read session state",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/flight.SessionSnapshot"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Close a session",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/v1/sessions/{id}/search": {
            "post": {
                "description": "Stale responses overtaken by a newer submission are discarded",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Submit a search within a session",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Search form",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/flight.SearchForm"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/flight.SessionSnapshot"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "flight.Airport": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "iata": {"type": "string"},
                "location": {"$ref": "#/definitions/flight.Coordinates"},
                "name": {"type": "string"}
            }
        },
        "flight.AirportsResponse": {
            "type": "object",
            "properties": {
                "airports": {"type": "array", "items": {"$ref": "#/definitions/flight.Airport"}}
            }
        },
        "flight.Coordinates": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"}
            }
        },
        "flight.CoordinatesResponse": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"},
                "code": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/flight.Coordinates"}
            }
        },
        "flight.DisplayOffer": {
            "type": "object",
            "properties": {
                "airline": {"type": "string"},
                "logo_url": {"type": "string"},
                "outbound": {"$ref": "#/definitions/flight.LegView"},
                "price_available": {"type": "boolean"},
                "price_per_passenger": {"type": "string"},
                "return": {"$ref": "#/definitions/flight.LegView"}
            }
        },
        "flight.LegView": {
            "type": "object",
            "properties": {
                "arrival": {"type": "string"},
                "date": {"type": "string"},
                "departure": {"type": "string"},
                "duration": {"type": "string"}
            }
        },
        "flight.Presentation": {
            "type": "object",
            "properties": {
                "offers": {"type": "array", "items": {"$ref": "#/definitions/flight.DisplayOffer"}},
                "passenger_label": {"type": "string"},
                "provenance": {"type": "string", "enum": ["live", "fallback", "unsearched"]},
                "route": {"$ref": "#/definitions/flight.RouteView"},
                "title": {"type": "string"}
            }
        },
        "flight.ProviderStatusResponse": {
            "type": "object",
            "properties": {
                "online": {"type": "boolean"}
            }
        },
        "flight.RouteView": {
            "type": "object",
            "properties": {
                "arrival": {"$ref": "#/definitions/flight.Coordinates"},
                "available": {"type": "boolean"},
                "departure": {"$ref": "#/definitions/flight.Coordinates"}
            }
        },
        "flight.SearchForm": {
            "type": "object",
            "properties": {
                "adults": {"type": "integer"},
                "arrival": {"$ref": "#/definitions/flight.Airport"},
                "children": {"type": "integer"},
                "departure": {"$ref": "#/definitions/flight.Airport"},
                "departure_date": {"type": "string"},
                "return_date": {"type": "string"},
                "trip_type": {"type": "string", "enum": ["one-way", "round-trip"]}
            }
        },
        "flight.SearchRequest": {
            "type": "object",
            "properties": {
                "adults": {"type": "integer"},
                "arrival": {"$ref": "#/definitions/flight.Airport"},
                "children": {"type": "integer"},
                "departure": {"$ref": "#/definitions/flight.Airport"},
                "departure_date": {"type": "string"},
                "return_date": {"type": "string"},
                "trip_type": {"type": "string"}
            }
        },
        "flight.SearchResponse": {
            "type": "object",
            "properties": {
                "request": {"$ref": "#/definitions/flight.SearchRequest"},
                "results": {"$ref": "#/definitions/flight.Presentation"}
            }
        },
        "flight.SessionSnapshot": {
            "type": "object",
            "properties": {
                "discarded": {"type": "boolean"},
                "generation": {"type": "string"},
                "id": {"type": "string"},
                "request": {"$ref": "#/definitions/flight.SearchRequest"},
                "results": {"$ref": "#/definitions/flight.Presentation"},
                "state": {"type": "string", "enum": ["idle", "searching", "results", "empty", "fallback"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Flight Search API",
	Description:      "Airport autocomplete, flight search with fallback offers and results-page sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

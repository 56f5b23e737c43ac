// Package docs registers the Swagger document served under /swagger.
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
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/flights/search": {
            "post": {
                "description": "Live flights for the criteria, or the fallback dataset when the live API fails",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search flights",
                "parameters": [
                    {"description": "Search criteria", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/flight.SearchCriteria"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/v1/flights/filter": {
            "post": {
                "description": "Splits results into outbound and return legs, applies the filter panel and sort key, and prices any selected legs",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Filter, sort and price search results",
                "parameters": [
                    {"description": "Search criteria, filters, sort and selection", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/flight.ResultsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.ResultsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/v1/flights/book": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Hand the selected itinerary to the booking step",
                "parameters": [
                    {"description": "Search criteria and selected flight codes", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/flight.BookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.BookingPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/v1/bookings": {
            "post": {
                "description": "Validates passengers, contact and payment details, prices the itinerary with tax and issues a booking reference",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Confirm a booking",
                "parameters": [
                    {"description": "Booking form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/booking.Request"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/booking.Confirmation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/v1/bookings/summary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Price a handed-over itinerary",
                "parameters": [
                    {"description": "Booking payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/flight.BookingPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.BookingFare"}}
                }
            }
        },
        "/api/flights/flights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Flight catalog for a route",
                "parameters": [
                    {"type": "string", "description": "Origin", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Destination", "name": "to", "in": "query", "required": true},
                    {"type": "string", "description": "Departure date", "name": "departure", "in": "query", "required": true},
                    {"type": "string", "description": "Return date", "name": "return", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/flight.FlightRecord"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/flights/flights/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Catalog flight by code",
                "parameters": [
                    {"type": "string", "description": "Flight IATA code", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.FlightRecord"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/flights/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Catalog flights priced for a party",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true},
                    {"type": "string", "name": "departure", "in": "query", "required": true},
                    {"type": "string", "name": "return", "in": "query"},
                    {"type": "integer", "name": "passengers", "in": "query"},
                    {"type": "string", "name": "class", "in": "query"},
                    {"type": "integer", "name": "maxPrice", "in": "query"},
                    {"type": "string", "name": "airline", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/flight.PricedFlight"}}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "enum": ["VALIDATION_ERROR", "MISSING_CRITERIA", "NOT_FOUND", "INTERNAL_FAILURE"]},
                "error": {"type": "string"}
            }
        },
        "flight.SearchCriteria": {
            "type": "object",
            "properties": {
                "from": {"type": "string", "example": "Mumbai"},
                "to": {"type": "string", "example": "Delhi"},
                "departure": {"type": "string", "example": "2024-01-15"},
                "returnDate": {"type": "string", "example": "2024-01-20"},
                "tripType": {"type": "string", "enum": ["ONE_WAY", "ROUND_TRIP"]},
                "travellers": {"type": "integer", "example": 1},
                "travelClass": {"type": "string", "enum": ["ECONOMY", "BUSINESS", "FIRST"]},
                "fareType": {"type": "string", "enum": ["REGULAR", "STUDENT", "SENIOR_CITIZEN", "DEFENCE"]}
            }
        },
        "flight.FlightRecord": {
            "type": "object",
            "properties": {
                "airline": {"type": "object", "properties": {"name": {"type": "string"}}},
                "flight": {"type": "object", "properties": {"iata": {"type": "string"}}},
                "departure": {"$ref": "#/definitions/flight.Endpoint"},
                "arrival": {"$ref": "#/definitions/flight.Endpoint"},
                "flight_status": {"type": "string"},
                "distance": {"type": "object", "properties": {"km": {"description": "number, or N/A when unknown"}}},
                "price": {"$ref": "#/definitions/flight.Price"},
                "travelClass": {"type": "string"},
                "duration": {"type": "string", "example": "2h 15m"},
                "onTimeRate": {"type": "integer", "example": 92}
            }
        },
        "flight.Endpoint": {
            "type": "object",
            "properties": {
                "airport": {"type": "string", "example": "Mumbai (BOM)"},
                "scheduled": {"type": "string", "example": "2024-01-15T10:30:00+00:00"}
            }
        },
        "flight.Price": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "currency": {"type": "string", "example": "INR"}
            }
        },
        "flight.PricedFlight": {
            "allOf": [
                {"$ref": "#/definitions/flight.FlightRecord"},
                {
                    "type": "object",
                    "properties": {
                        "price": {
                            "type": "object",
                            "properties": {
                                "amount": {"type": "number"},
                                "currency": {"type": "string"},
                                "perPerson": {"type": "number"}
                            }
                        },
                        "passengers": {"type": "integer"}
                    }
                }
            ]
        },
        "flight.Metadata": {
            "type": "object",
            "properties": {
                "total_results": {"type": "integer"},
                "source": {"type": "string", "enum": ["live", "fallback"]},
                "search_time_ms": {"type": "integer"},
                "cache_key": {"type": "string"},
                "cache_hit": {"type": "boolean"}
            }
        },
        "flight.SearchResponse": {
            "type": "object",
            "properties": {
                "search_criteria": {"$ref": "#/definitions/flight.SearchCriteria"},
                "metadata": {"$ref": "#/definitions/flight.Metadata"},
                "flights": {"type": "array", "items": {"$ref": "#/definitions/flight.FlightRecord"}}
            }
        },
        "flight.FilterState": {
            "type": "object",
            "properties": {
                "popular": {"type": "array", "items": {"type": "string", "enum": ["nonstop", "hideNearby", "refundable"]}},
                "airlines": {"type": "array", "items": {"type": "string"}},
                "stops": {"type": "array", "items": {"type": "string", "enum": ["nonstop", "1stop", "2plus"]}},
                "depTime": {"type": "array", "items": {"type": "string", "enum": ["before6", "6to12", "12to18", "after18"]}},
                "arrTime": {"type": "array", "items": {"type": "string", "enum": ["before6", "6to12", "12to18", "after18"]}},
                "depAirport": {"type": "string"},
                "price": {"type": "integer", "minimum": 2000, "maximum": 20000}
            }
        },
        "flight.ResultsRequest": {
            "allOf": [
                {"$ref": "#/definitions/flight.SearchCriteria"},
                {
                    "type": "object",
                    "properties": {
                        "filters": {"$ref": "#/definitions/flight.FilterState"},
                        "class": {"type": "string", "example": "all"},
                        "direction": {"type": "string", "enum": ["both", "outbound", "return"]},
                        "sortBy": {"type": "string", "enum": ["price", "duration", "departure"]},
                        "selectedOutbound": {"type": "string"},
                        "selectedReturn": {"type": "string"},
                        "promoCode": {"type": "string", "example": "SAVE10"}
                    }
                }
            ]
        },
        "flight.Selection": {
            "type": "object",
            "properties": {
                "outbound": {"$ref": "#/definitions/flight.FlightRecord"},
                "return": {"$ref": "#/definitions/flight.FlightRecord"}
            }
        },
        "flight.ResultsResponse": {
            "type": "object",
            "properties": {
                "search_criteria": {"$ref": "#/definitions/flight.SearchCriteria"},
                "metadata": {"$ref": "#/definitions/flight.Metadata"},
                "sort_by": {"type": "string"},
                "outbound": {"type": "array", "items": {"$ref": "#/definitions/flight.FlightRecord"}},
                "return": {"type": "array", "items": {"$ref": "#/definitions/flight.FlightRecord"}},
                "fare": {
                    "type": "object",
                    "properties": {
                        "selection": {"$ref": "#/definitions/flight.Selection"},
                        "promo": {
                            "type": "object",
                            "properties": {
                                "code": {"type": "string"},
                                "applied": {"type": "boolean"},
                                "discount": {"type": "integer"}
                            }
                        },
                        "totalFare": {"type": "integer"},
                        "bookingReady": {"type": "boolean"}
                    }
                }
            }
        },
        "flight.BookRequest": {
            "allOf": [
                {"$ref": "#/definitions/flight.SearchCriteria"},
                {
                    "type": "object",
                    "properties": {
                        "outbound": {"type": "string"},
                        "return": {"type": "string"},
                        "promoCode": {"type": "string"}
                    }
                }
            ]
        },
        "flight.BookingPayload": {
            "type": "object",
            "properties": {
                "flight": {"$ref": "#/definitions/flight.FlightRecord"},
                "outbound": {"$ref": "#/definitions/flight.FlightRecord"},
                "return": {"$ref": "#/definitions/flight.FlightRecord"},
                "searchParams": {"$ref": "#/definitions/flight.SearchCriteria"},
                "totalFare": {"type": "integer"}
            }
        },
        "flight.BookingFare": {
            "type": "object",
            "properties": {
                "basePrice": {"type": "number"},
                "taxes": {"type": "number"},
                "total": {"type": "number"}
            }
        },
        "booking.Passenger": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "dateOfBirth": {"type": "string", "example": "1990-04-02"},
                "gender": {"type": "string"}
            }
        },
        "booking.Contact": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "booking.Request": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/flight.BookingPayload"},
                "passengers": {"type": "array", "items": {"$ref": "#/definitions/booking.Passenger"}},
                "contact": {"$ref": "#/definitions/booking.Contact"},
                "payment": {
                    "type": "object",
                    "properties": {
                        "cardNumber": {"type": "string"},
                        "expiry": {"type": "string"},
                        "cvv": {"type": "string"},
                        "cardHolder": {"type": "string"}
                    }
                }
            }
        },
        "booking.Confirmation": {
            "type": "object",
            "properties": {
                "bookingId": {"type": "string", "example": "BK1743512345678901234"},
                "booking": {"$ref": "#/definitions/flight.BookingPayload"},
                "passengers": {"type": "array", "items": {"$ref": "#/definitions/booking.Passenger"}},
                "contact": {"$ref": "#/definitions/booking.Contact"},
                "fare": {"$ref": "#/definitions/flight.BookingFare"},
                "totalAmount": {"type": "number"},
                "bookingDate": {"type": "string", "format": "date-time"}
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
	Title:            "Tripar Flight API",
	Description:      "Flight search, filtering, fare pricing and booking handoff.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

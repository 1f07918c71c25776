// Package docs registra la definición OpenAPI que sirve /swagger.
// Las anotaciones de cada handler son la fuente; este archivo se regenera con `swag init -g cmd/api/main.go`.
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
        "/accommodations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "Buscar alojamientos",
                "parameters": [
                    {"type": "string", "name": "location", "in": "query"},
                    {"enum": ["small", "medium", "large"], "type": "string", "name": "pet_size", "in": "query"},
                    {"enum": ["puppy", "adult", "senior"], "type": "string", "name": "pet_age", "in": "query"},
                    {"type": "string", "description": "a-b o a+ (miles)", "name": "price_range", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "amenities", "in": "query"},
                    {"type": "string", "name": "pet_id", "in": "query"},
                    {"enum": ["recommended", "rating", "price_asc", "price_desc", "pet_friendly"], "type": "string", "name": "sort", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/accommodations/{accommodationID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "Ver alojamiento",
                "parameters": [{"type": "string", "name": "accommodationID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/accommodations/{accommodationID}/vets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vets"],
                "summary": "Veterinarias cercanas",
                "parameters": [{"type": "string", "name": "accommodationID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/accommodations/{accommodationID}/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Reseñas del alojamiento",
                "parameters": [
                    {"type": "string", "name": "accommodationID", "in": "path", "required": true},
                    {"enum": ["all", "small", "medium", "large"], "type": "string", "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "Marcadores del mapa para la búsqueda",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/map/markers/{accommodationID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "Seleccionar marcador",
                "parameters": [{"type": "string", "name": "accommodationID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/map/token": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["map"],
                "summary": "Configurar token del mapa",
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pets": {
            "get": {"produces": ["application/json"], "tags": ["pets"], "summary": "Listar mascotas", "responses": {"200": {"description": "OK"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["pets"], "summary": "Registrar mascota", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/pets/personality-tags": {
            "get": {"produces": ["application/json"], "tags": ["pets"], "summary": "Vocabulario de personalidad", "responses": {"200": {"description": "OK"}}}
        },
        "/pets/{petID}": {
            "get": {"produces": ["application/json"], "tags": ["pets"], "summary": "Ver mascota", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"consumes": ["application/json"], "tags": ["pets"], "summary": "Editar mascota", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}},
            "delete": {"tags": ["pets"], "summary": "Borrar mascota", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/wizard/options": {
            "get": {"produces": ["application/json"], "tags": ["wizard"], "summary": "Opciones del asistente", "responses": {"200": {"description": "OK"}}}
        },
        "/wizard/sessions": {
            "post": {"produces": ["application/json"], "tags": ["wizard"], "summary": "Iniciar asistente", "responses": {"201": {"description": "Created"}}}
        },
        "/wizard/sessions/{sessionID}": {
            "get": {"produces": ["application/json"], "tags": ["wizard"], "summary": "Ver sesión", "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/wizard/sessions/{sessionID}/steps": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["wizard"], "summary": "Completar paso", "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/wizard/sessions/{sessionID}/back": {
            "post": {"produces": ["application/json"], "tags": ["wizard"], "summary": "Paso anterior", "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/wizard/sessions/{sessionID}/reset": {
            "post": {"produces": ["application/json"], "tags": ["wizard"], "summary": "Reiniciar asistente", "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/plan": {
            "get": {"produces": ["application/json"], "tags": ["plans"], "summary": "Plan de viaje", "responses": {"200": {"description": "OK"}}}
        },
        "/plan/checklist/{itemID}/toggle": {
            "post": {"produces": ["application/json"], "tags": ["plans"], "summary": "Marcar/desmarcar ítem", "parameters": [{"type": "string", "name": "itemID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/reports": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Listar reportes de viaje", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/summary": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Resumen de todos los viajes", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/{reportID}": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Ver reporte", "parameters": [{"type": "string", "name": "reportID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/reports/{reportID}/export": {
            "get": {"produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "tags": ["reports"], "summary": "Exportar reporte a Excel", "parameters": [{"type": "string", "name": "reportID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/guide": {
            "get": {"produces": ["application/json"], "tags": ["guide"], "summary": "Guía de viaje con mascotas", "parameters": [{"enum": ["beach", "mountain", "valley"], "type": "string", "name": "theme", "in": "query"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Friendly Stays API",
	Description:      "Búsqueda de alojamientos pet-friendly, perfiles de mascotas y asistente de viaje.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

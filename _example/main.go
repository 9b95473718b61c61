// Command example translates a schema, serves it as part of an OpenAPI
// document, and validates request bodies against it.
//
// Run:
//
//	go run ./_example
//
// Then fetch http://localhost:8080/docs/docs.json or
// http://localhost:8080/docs/schemas/Order.json.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	js "github.com/Gobd/jsonschema"
	"github.com/Gobd/jsonschema/openapi"
)

var order = js.Titled(js.Object(
	js.F("customer_name", js.String(js.Length(1, 200))),
	js.F("item_count", js.Integer(js.Min(1))),
	js.F("total", js.Number(js.Min(0.01))),
	js.F("tags", js.Optional(js.List(js.String(), js.Unique()))),
), "Order")

var errorResponse = js.Object(js.F("error", js.String()))

func main() {
	fmt.Println(js.MustTranslate(order))

	doc := openapi.DocBase("Example API", "Demonstrates jsonschema", "0.1.0")
	if err := openapi.AddComponent(doc, "Order", order); err != nil {
		log.Fatal(err)
	}

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary: "Create an order",
		Request: order,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Created order", Bodies: []js.Node{order}},
			"400": {Desc: "Validation error", Bodies: []js.Node{errorResponse}},
		},
	})

	http.Handle("/docs/", http.StripPrefix("/docs", openapi.HandlerMust(doc)))

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var body any
		err := json.NewDecoder(r.Body).Decode(&body)
		if err == nil {
			err = js.Validate(order, body)
		}
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

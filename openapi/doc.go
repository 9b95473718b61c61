// Package openapi places translated schema nodes into OpenAPI 3 documents:
// as component schemas, request bodies and responses. It also serves the
// resulting document over HTTP.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve it with [HandlerMust]:
//
//	order := js.Object(
//	    js.F("id", js.String(js.Length(1, 64))),
//	    js.F("note", js.Optional(js.String())),
//	)
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  order,
//	    Response: order,
//	})
//	http.Handle("/docs/", http.StripPrefix("/docs", openapi.HandlerMust(doc)))
package openapi

package openapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Handler returns an http.Handler serving s as JSON at "/" and
// "/docs.json", and each component schema at "/schemas/{name}.json".
// The document is validated and encoded once, up front.
//
//	http.Handle("/docs/", http.StripPrefix("/docs", openapi.HandlerMust(doc)))
func Handler(s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	schemas := map[string][]byte{}
	if s.Components != nil {
		for name, ref := range s.Components.Schemas {
			b, err := ref.MarshalJSON()
			if err != nil {
				return nil, err
			}
			schemas[name] = b
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := r.URL.Path; {
		case path == "" || path == "/" || path == "/docs.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		case strings.HasPrefix(path, "/schemas/") && strings.HasSuffix(path, ".json"):
			name := strings.TrimSuffix(strings.TrimPrefix(path, "/schemas/"), ".json")
			b, ok := schemas[name]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/schema+json")
			_, _ = w.Write(b)
		default:
			http.NotFound(w, r)
		}
	}), nil
}

// HandlerMust is like Handler but panics on error.
func HandlerMust(s *openapi3.T) http.Handler {
	h, err := Handler(s)
	if err != nil {
		panic(err)
	}
	return h
}

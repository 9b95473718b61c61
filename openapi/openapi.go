package openapi

import (
	"bytes"
	"net/http"

	js "github.com/Gobd/jsonschema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
)

const componentPrefix = "#/components/schemas/"

// Response describes an HTTP response with a description and the schema
// nodes of its possible bodies.
type Response struct {
	Desc   string
	Bodies []js.Node
}

// Endpoint describes a single API operation for [AddEndpoint] and the
// convenience helpers [Get], [Post], [Put], [Patch], and [Delete].
//
// Bodies whose schema has a title are registered as component schemas under
// that title and referenced with $ref. Untitled bodies are inlined.
type Endpoint struct {
	Summary     string
	Description string
	Request     js.Node             // single request body schema (convenience)
	Requests    []js.Node           // multiple request body schemas (oneOf)
	Response    js.Node             // single 200 response schema (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// schemaRefs turns body nodes into schema references.
type schemaRefs func(vs []js.Node) (openapi3.SchemaRefs, error)

func inline(vs []js.Node) (openapi3.SchemaRefs, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for i := range vs {
		ref, err := NewSchemaRef(vs[i])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// components returns a schemaRefs that registers titled schemas on doc.
func components(doc *openapi3.T) schemaRefs {
	return func(vs []js.Node) (openapi3.SchemaRefs, error) {
		refs, err := inline(vs)
		if err != nil {
			return nil, err
		}
		for i, ref := range refs {
			name := ref.Value.Title
			if name == "" || openapi3.ValidateIdentifier(name) != nil {
				continue
			}
			if err := register(doc, name, ref); err != nil {
				return nil, err
			}
			refs[i] = &openapi3.SchemaRef{Ref: componentPrefix + name, Value: ref.Value}
		}
		return refs, nil
	}
}

// register stores ref under name. Registering an equal schema twice is
// allowed, a different one is an error.
func register(doc *openapi3.T, name string, ref *openapi3.SchemaRef) error {
	if doc.Components == nil {
		doc.Components = &openapi3.Components{}
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = openapi3.Schemas{}
	}
	if existing, ok := doc.Components.Schemas[name]; ok {
		same, err := sameSchema(existing.Value, ref.Value)
		if err != nil {
			return errors.Wrapf(err, "component %s", name)
		}
		if !same {
			return errors.Errorf("component %s already registered with a different schema", name)
		}
		return nil
	}
	doc.Components.Schemas[name] = ref
	return nil
}

func sameSchema(a, b *openapi3.Schema) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	aj, err := a.MarshalJSON()
	if err != nil {
		return false, err
	}
	bj, err := b.MarshalJSON()
	if err != nil {
		return false, err
	}
	return bytes.Equal(aj, bj), nil
}

// jsonContent wraps refs in an application/json content map, using oneOf
// when there is more than one.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.Content{"application/json": &openapi3.MediaType{Schema: schema}}
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(vs ...js.Node) *openapi3.RequestBodyRef {
	o, err := NewRequest(vs...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates an OpenAPI request body from the given schema nodes,
// inlining every schema. More than one node yields a oneOf body.
func NewRequest(vs ...js.Node) (*openapi3.RequestBodyRef, error) {
	return newRequest(vs, inline)
}

func newRequest(vs []js.Node, toRefs schemaRefs) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no schemas given")
	}
	refs, err := toRefs(vs)
	if err != nil {
		return nil, errors.Wrap(err, "request")
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{Content: jsonContent(refs)},
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object, inlining every schema.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	return newResponses(vs, inline)
}

func newResponses(vs map[string]Response, toRefs schemaRefs) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no schemas given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}
		if len(r.Bodies) > 0 {
			refs, err := toRefs(r.Bodies)
			if err != nil {
				return nil, errors.Wrapf(err, "response %s", statusCode)
			}
			resp.Content = jsonContent(refs)
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddComponent translates n and registers it under name in the document's
// component schemas. Registering a different schema under a taken name fails.
func AddComponent(s *openapi3.T, name string, n js.Node) error {
	ref, err := NewSchemaRef(n)
	if err != nil {
		return errors.Wrapf(err, "component %s", name)
	}
	return register(s, name, ref)
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// AddEndpoint builds an [openapi3.Operation] from ep and registers it on doc
// at path and method. Titled body schemas become component schemas.
func AddEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return errors.Errorf("unsupported method %q", method)
	}

	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}
	toRefs := components(doc)

	requests := ep.Requests
	if len(requests) == 0 && ep.Request != nil {
		requests = []js.Node{ep.Request}
	}
	if len(requests) > 0 {
		body, err := newRequest(requests, toRefs)
		if err != nil {
			return errors.Wrapf(err, "%s %s", method, path)
		}
		op.RequestBody = body
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []js.Node{ep.Response}},
		}
	}
	if responses != nil {
		r, err := newResponses(responses, toRefs)
		if err != nil {
			return errors.Wrapf(err, "%s %s", method, path)
		}
		op.Responses = r
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
	return nil
}

func mustAddEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	if err := AddEndpoint(doc, path, method, operationID, ep); err != nil {
		panic(err)
	}
}

// Get registers a GET endpoint on doc. It panics if a body schema fails to translate.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	mustAddEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc. It panics if a body schema fails to translate.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	mustAddEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc. It panics if a body schema fails to translate.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	mustAddEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc. It panics if a body schema fails to translate.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	mustAddEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc. It panics if a body schema fails to translate.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	mustAddEndpoint(doc, path, http.MethodDelete, operationID, ep)
}

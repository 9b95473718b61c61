package openapi

import (
	js "github.com/Gobd/jsonschema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
)

// NewSchemaRef translates n and converts the result into an OpenAPI 3.0
// schema.
//
// OpenAPI 3.0 has no positional array items, so a tuple becomes an array
// whose items match any of the positional schemas, with minItems and
// maxItems both set to the tuple's length. Positions are not enforced.
func NewSchemaRef(n js.Node, opts ...js.Option) (*openapi3.SchemaRef, error) {
	doc, err := js.Translate(n, opts...)
	if err != nil {
		return nil, err
	}
	s, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	return &openapi3.SchemaRef{Value: s}, nil
}

// NewSchemaRefMust is like [NewSchemaRef] but panics on error.
func NewSchemaRefMust(n js.Node, opts ...js.Option) *openapi3.SchemaRef {
	ref, err := NewSchemaRef(n, opts...)
	if err != nil {
		panic(err)
	}
	return ref
}

func fromDocument(doc *js.Document) (*openapi3.Schema, error) { //nolint:revive // one branch per keyword
	s := openapi3.NewSchema()
	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		switch v := pair.Value.(type) {
		case string:
			switch pair.Key {
			case "title":
				s.Title = v
			case "description":
				s.Description = v
			case "type":
				s.Type = &openapi3.Types{v}
			case "pattern":
				s.Pattern = v
			default:
				return nil, unsupported(pair.Key, v)
			}
		case int:
			if v < 0 {
				return nil, errors.Errorf("%s must not be negative, got %d", pair.Key, v)
			}
			n := uint64(v)
			switch pair.Key {
			case "minLength":
				s.MinLength = n
			case "maxLength":
				s.MaxLength = &n
			case "minItems":
				s.MinItems = n
			case "maxItems":
				s.MaxItems = &n
			default:
				return nil, unsupported(pair.Key, v)
			}
		case float64:
			switch pair.Key {
			case "minimum":
				s.Min = &v
			case "maximum":
				s.Max = &v
			default:
				return nil, unsupported(pair.Key, v)
			}
		case bool:
			if pair.Key != "uniqueItems" {
				return nil, unsupported(pair.Key, v)
			}
			s.UniqueItems = v
		case []string:
			if pair.Key != "required" {
				return nil, unsupported(pair.Key, v)
			}
			s.Required = v
		case *js.Document:
			switch pair.Key {
			case "items":
				item, err := fromDocument(v)
				if err != nil {
					return nil, errors.Wrap(err, "items")
				}
				s.Items = &openapi3.SchemaRef{Value: item}
			case "properties":
				props, err := fromProperties(v)
				if err != nil {
					return nil, err
				}
				s.Properties = props
			default:
				return nil, unsupported(pair.Key, v)
			}
		case []*js.Document:
			if pair.Key != "items" {
				return nil, unsupported(pair.Key, v)
			}
			items, err := tupleItems(v)
			if err != nil {
				return nil, err
			}
			s.Items = items
			n := uint64(len(v))
			s.MinItems = n
			s.MaxItems = &n
		default:
			return nil, unsupported(pair.Key, v)
		}
	}
	return s, nil
}

func fromProperties(doc *js.Document) (openapi3.Schemas, error) {
	props := make(openapi3.Schemas, doc.Len())
	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		pd, ok := pair.Value.(*js.Document)
		if !ok {
			return nil, unsupported("properties."+pair.Key, pair.Value)
		}
		p, err := fromDocument(pd)
		if err != nil {
			return nil, errors.Wrapf(err, "properties.%s", pair.Key)
		}
		props[pair.Key] = &openapi3.SchemaRef{Value: p}
	}
	return props, nil
}

func tupleItems(docs []*js.Document) (*openapi3.SchemaRef, error) {
	if len(docs) == 0 {
		return &openapi3.SchemaRef{Value: openapi3.NewSchema()}, nil
	}
	refs := make(openapi3.SchemaRefs, len(docs))
	for i, d := range docs {
		item, err := fromDocument(d)
		if err != nil {
			return nil, errors.Wrapf(err, "items[%d]", i)
		}
		refs[i] = &openapi3.SchemaRef{Value: item}
	}
	if len(refs) == 1 {
		return refs[0], nil
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{AnyOf: refs}}, nil
}

func unsupported(key string, v any) error {
	return errors.Errorf("unsupported schema keyword %q with value of type %T", key, v)
}

package jsonschema

import (
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultMaxDepth is the nesting depth [Translate] accepts unless
// [WithMaxDepth] says otherwise.
const DefaultMaxDepth = 64

var (
	// ErrNilNode is returned when a nil node is found where one is required.
	ErrNilNode = errors.New("nil schema node")
	// ErrCycle is returned when a node contains itself.
	ErrCycle = errors.New("schema node cycle")
	// ErrMaxDepth is returned when nesting exceeds the configured depth.
	ErrMaxDepth = errors.New("schema nesting too deep")
)

// translateOptions contains options for configuring the behavior of [Translate].
type translateOptions struct {
	maxDepth int
}

// Option configures [Translate].
type Option func(options translateOptions) translateOptions

// WithMaxDepth limits how deeply nested a schema may be. Wrappers count as
// a level. Values below one are ignored.
func WithMaxDepth(depth int) Option {
	return func(options translateOptions) translateOptions {
		if depth > 0 {
			options.maxDepth = depth
		}
		return options
	}
}

// Translate converts n into a JSON Schema document.
//
// Keys appear in a fixed order: title and description first, then type,
// then the keys specific to the node's variant. Translation only reads n.
// It fails only for nil nodes, cycles, and schemas nested deeper than the
// configured limit.
func Translate(n Node, opts ...Option) (*Document, error) {
	options := translateOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		options = opt(options)
	}
	t := &translator{
		maxDepth: options.maxDepth,
		active:   map[*Base]struct{}{},
	}
	return t.translate(n, "$", 0)
}

// MustTranslate is like [Translate] but panics on error.
func MustTranslate(n Node, opts ...Option) *Document {
	doc, err := Translate(n, opts...)
	if err != nil {
		panic(err)
	}
	return doc
}

type translator struct {
	maxDepth int
	// active holds the nodes on the path from the root to the current node.
	active map[*Base]struct{}
}

func (t *translator) translate(n Node, path string, depth int) (*Document, error) { //nolint:revive // one branch per variant
	if isNil(n) {
		return nil, errors.Wrapf(ErrNilNode, "at %s", path)
	}
	if depth > t.maxDepth {
		return nil, errors.Wrapf(ErrMaxDepth, "at %s: limit %d", path, t.maxDepth)
	}
	b := n.schemaBase()
	if _, ok := t.active[b]; ok {
		return nil, errors.Wrapf(ErrCycle, "at %s", path)
	}
	t.active[b] = struct{}{}
	defer delete(t.active, b)

	doc := newDocument()
	if b.Name != "" {
		doc.Set("title", b.Name)
	}
	if b.Description != "" {
		doc.Set("description", b.Description)
	}

	switch n := n.(type) {
	case *AnyType:
	case *StringType:
		doc.Set("type", "string")
		setLength(doc, b.Validators, "minLength", "maxLength")
		if rs := validatorsOf[*RegexpRule](b.Validators); len(rs) > 0 {
			doc.Set("pattern", rs[0].Pattern())
		}
	case *IntegerType:
		doc.Set("type", "integer")
		setRange(doc, b.Validators)
	case *NumberType:
		doc.Set("type", "number")
		setRange(doc, b.Validators)
	case *BooleanType:
		doc.Set("type", "boolean")
	case *ListType:
		doc.Set("type", "array")
		items, err := t.translate(n.ItemType, path+".items", depth+1)
		if err != nil {
			return nil, err
		}
		doc.Set("items", items)
		setLength(doc, b.Validators, "minItems", "maxItems")
		for _, u := range validatorsOf[*UniqueRule](b.Validators) {
			if u.Key.IsWholeElement() {
				doc.Set("uniqueItems", true)
				break
			}
		}
	case *TupleType:
		doc.Set("type", "array")
		items := make([]*Document, len(n.ItemTypes))
		for i, it := range n.ItemTypes {
			item, err := t.translate(it, path+".items["+strconv.Itoa(i)+"]", depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		doc.Set("items", items)
	case *ObjectType:
		doc.Set("type", "object")
		properties := newDocument()
		var required []string
		if n.Fields != nil {
			for pair := n.Fields.Oldest(); pair != nil; pair = pair.Next() {
				var ft Node
				if pair.Value != nil {
					ft = pair.Value.FieldType
				}
				prop, err := t.translate(ft, path+".properties."+pair.Key, depth+1)
				if err != nil {
					return nil, err
				}
				properties.Set(pair.Key, prop)
				if _, optional := ft.(*OptionalType); !optional {
					required = append(required, pair.Key)
				}
			}
		}
		doc.Set("properties", properties)
		if len(required) > 0 {
			doc.Set("required", required)
		}
	case Wrapper:
		return t.translate(n.Inner(), path, depth+1)
	}

	return doc, nil
}

// setLength adds the bounds implied by the Length validators. Zero bounds
// do not count, so a Length with Min 0 never produces a minimum.
func setLength(doc *Document, validators []Validator, minKey, maxKey string) {
	var lo, hi int
	var hasLo, hasHi bool
	for _, r := range validatorsOf[*LengthRule](validators) {
		if v := r.lower(); v != 0 && (!hasLo || v > lo) {
			lo, hasLo = v, true
		}
		if v := r.upper(); v != 0 && (!hasHi || v < hi) {
			hi, hasHi = v, true
		}
	}
	if hasLo {
		doc.Set(minKey, lo)
	}
	if hasHi {
		doc.Set(maxKey, hi)
	}
}

// setRange adds minimum and maximum from the Range validators, with the same
// treatment of zero bounds as setLength.
func setRange(doc *Document, validators []Validator) {
	var lo, hi float64
	var hasLo, hasHi bool
	for _, r := range validatorsOf[*RangeRule](validators) {
		if v, ok := bound(r.Min); ok && (!hasLo || v > lo) {
			lo, hasLo = v, true
		}
		if v, ok := bound(r.Max); ok && (!hasHi || v < hi) {
			hi, hasHi = v, true
		}
	}
	if hasLo {
		doc.Set("minimum", lo)
	}
	if hasHi {
		doc.Set("maximum", hi)
	}
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

package jsonschema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type (
	// Base holds the attributes shared by every schema node. Embed it to
	// define a node variant of your own; variants the translator does not
	// recognize produce only their title and description, unless they also
	// implement [Wrapper].
	Base struct {
		Name        string
		Description string
		Validators  []Validator
	}

	// Node is a typed descriptor of an expected data shape.
	Node interface {
		schemaBase() *Base
	}

	// Wrapper is implemented by nodes that modify another node without
	// changing its shape. They translate to exactly what their inner node
	// translates to.
	Wrapper interface {
		Node
		Inner() Node
	}

	// AnyType accepts any value.
	AnyType struct{ Base }

	// StringType describes a string value.
	StringType struct{ Base }

	// NumberType describes a floating point value.
	NumberType struct{ Base }

	// IntegerType describes an integral number.
	IntegerType struct{ Base }

	// BooleanType describes a boolean value.
	BooleanType struct{ Base }

	// ListType describes a homogeneous sequence.
	ListType struct {
		Base
		ItemType Node
	}

	// TupleType describes a fixed-length sequence with a type per position.
	TupleType struct {
		Base
		ItemTypes []Node
	}

	// ObjectType describes a mapping with a known set of fields, kept in
	// declaration order.
	ObjectType struct {
		Base
		Fields *orderedmap.OrderedMap[string, *Field]
	}

	// Field binds a name to its type within an [ObjectType].
	Field struct {
		Name      string
		FieldType Node
	}

	// OptionalType marks its inner node as nullable. Object fields of this
	// type are not listed as required.
	OptionalType struct {
		Base
		InnerType Node
	}

	// LoadOnlyType marks a node that is only accepted on input.
	LoadOnlyType struct {
		Base
		InnerType Node
	}

	// DumpOnlyType marks a node that is only produced on output.
	DumpOnlyType struct {
		Base
		InnerType Node
	}
)

func (b *Base) schemaBase() *Base { return b }

func (o *OptionalType) Inner() Node { return o.InnerType }
func (o *LoadOnlyType) Inner() Node { return o.InnerType }
func (o *DumpOnlyType) Inner() Node { return o.InnerType }

// Any returns a node accepting any value.
func Any(validators ...Validator) *AnyType {
	return &AnyType{Base{Validators: validators}}
}

// String returns a string node.
func String(validators ...Validator) *StringType {
	return &StringType{Base{Validators: validators}}
}

// Number returns a number node.
func Number(validators ...Validator) *NumberType {
	return &NumberType{Base{Validators: validators}}
}

// Integer returns an integer node.
func Integer(validators ...Validator) *IntegerType {
	return &IntegerType{Base{Validators: validators}}
}

// Boolean returns a boolean node.
func Boolean(validators ...Validator) *BooleanType {
	return &BooleanType{Base{Validators: validators}}
}

// List returns a node for a sequence of item.
func List(item Node, validators ...Validator) *ListType {
	return &ListType{Base: Base{Validators: validators}, ItemType: item}
}

// Tuple returns a node for a sequence with one type per position.
func Tuple(items ...Node) *TupleType {
	return &TupleType{ItemTypes: items}
}

// Object returns an object node with the given fields. A repeated name
// replaces the earlier field's type but keeps its position.
func Object(fields ...*Field) *ObjectType {
	om := orderedmap.New[string, *Field](len(fields))
	for _, f := range fields {
		om.Set(f.Name, f)
	}
	return &ObjectType{Fields: om}
}

// F creates a Field for use with [Object].
func F(name string, t Node) *Field {
	return &Field{Name: name, FieldType: t}
}

// Optional wraps inner so that it also accepts null.
func Optional(inner Node) *OptionalType {
	return &OptionalType{InnerType: inner}
}

// LoadOnly wraps inner as an input-only node.
func LoadOnly(inner Node) *LoadOnlyType {
	return &LoadOnlyType{InnerType: inner}
}

// DumpOnly wraps inner as an output-only node.
func DumpOnly(inner Node) *DumpOnlyType {
	return &DumpOnlyType{InnerType: inner}
}

// Titled sets the node's name, used as the JSON Schema title, and returns n.
func Titled[N Node](n N, name string) N {
	n.schemaBase().Name = name
	return n
}

// Described sets the node's description and returns n.
func Described[N Node](n N, desc string) N {
	n.schemaBase().Description = desc
	return n
}

// Field returns the field declared under name.
func (o *ObjectType) Field(name string) (*Field, bool) {
	if o.Fields == nil {
		return nil, false
	}
	return o.Fields.Get(name)
}

// Names returns field names in declaration order.
func (o *ObjectType) Names() []string {
	if o.Fields == nil {
		return nil
	}
	names := make([]string, 0, o.Fields.Len())
	for pair := o.Fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Document is a JSON Schema document. Keys keep insertion order, so
// serializing the same translation twice yields identical bytes.
//
// Values are strings, ints, float64s, bools, []string, nested *Document
// values and []*Document (tuple items).
type Document struct {
	*orderedmap.OrderedMap[string, any]
}

func newDocument() *Document {
	return &Document{orderedmap.New[string, any]()}
}

// Keys returns the document's keys in order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.Len())
	for pair := d.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// JSON returns the compact JSON encoding of the document.
func (d *Document) JSON() ([]byte, error) {
	return d.MarshalJSON()
}

// MarshalIndent is like JSON but applies [json.Indent].
func (d *Document) MarshalIndent(prefix, indent string) ([]byte, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML returns the YAML encoding of the document, keys in document order.
func (d *Document) YAML() ([]byte, error) {
	node, err := yamlNode(d)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// String returns the compact JSON encoding, or the error text if encoding fails.
func (d *Document) String() string {
	b, err := d.JSON()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func yamlNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case *Document:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			value, err := yamlNode(pair.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", pair.Key)
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
				value,
			)
		}
		return node, nil
	case []*Document:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range v {
			child, err := yamlNode(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// Package jsonschema describes data shapes as a tree of schema nodes and
// translates them into JSON Schema documents.
//
// Build a schema from the node constructors and attach validators:
//
//	email := Titled(String(Length(5, 255), Regexp(`^[^@]+@[^@]+$`)), "Email")
//	user := Object(
//	    F("email", email),
//	    F("age", Optional(Integer(Range(0, 150)))),
//	    F("tags", List(String(), Unique())),
//	)
//
// Then translate it:
//
//	doc, err := Translate(user)
//
// The resulting [Document] keeps its keys in a fixed order and encodes to
// JSON or YAML. Only Length, Regexp, Range and Unique contribute keywords.
// Other validators are enforced by [Validate] and ignored by translation.
//
// Sub-packages:
//   - openapi – OpenAPI 3 schema conversion, endpoint helpers and a handler serving the result
package jsonschema

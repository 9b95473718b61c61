package jsonschema_test

import (
	"fmt"

	js "github.com/Gobd/jsonschema"
)

func ExampleTranslate() {
	email := js.Titled(js.String(js.Length(5, 255), js.Regexp(`^[^@]+@[^@]+$`)), "Email")
	fmt.Println(js.MustTranslate(email))
	// Output: {"title":"Email","type":"string","minLength":5,"maxLength":255,"pattern":"^[^@]+@[^@]+$"}
}

func ExampleTranslate_object() {
	user := js.Object(
		js.F("name", js.String()),
		js.F("nickname", js.Optional(js.String())),
		js.F("scores", js.List(js.Integer(js.Min(1)), js.Unique())),
	)
	fmt.Println(js.MustTranslate(user))
	// Output: {"type":"object","properties":{"name":{"type":"string"},"nickname":{"type":"string"},"scores":{"type":"array","items":{"type":"integer","minimum":1},"uniqueItems":true}},"required":["name","scores"]}
}

func ExampleTranslate_tuple() {
	point := js.Tuple(js.Number(), js.Number())
	fmt.Println(js.MustTranslate(point))
	// Output: {"type":"array","items":[{"type":"number"},{"type":"number"}]}
}

func ExampleDocument_YAML() {
	b, err := js.MustTranslate(js.Titled(js.Integer(js.Range(1, 10)), "Rating")).YAML()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(b))
	// Output:
	// title: Rating
	// type: integer
	// minimum: 1
	// maximum: 10
}

func ExampleValidate() {
	user := js.Object(
		js.F("name", js.String(js.Length(1, 100))),
		js.F("age", js.Optional(js.Integer(js.Range(0, 150)))),
	)
	fmt.Println(js.Validate(user, map[string]any{"name": "Alice", "age": 30}))
	// Output: <nil>
}

func ExampleValidate_error() {
	user := js.Object(
		js.F("name", js.String(js.Length(1, 100))),
		js.F("age", js.Optional(js.Integer(js.Range(0, 150)))),
	)
	fmt.Println(js.Validate(user, map[string]any{"age": 200}))
	// Output: age: must be no greater than 150; name: cannot be blank.
}

func ExampleWithMaxDepth() {
	_, err := js.Translate(js.List(js.List(js.String())), js.WithMaxDepth(1))
	fmt.Println(err)
	// Output: at $.items.items: limit 1: schema nesting too deep
}

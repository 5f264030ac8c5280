package codec

import (
	"reflect"
	"testing"
)

func mustMarshal(t *testing.T, v any, opts ...EncoderOption) string {
	t.Helper()
	out, err := MarshalString(v, opts...)
	if err != nil {
		t.Fatalf("MarshalString: %v", err)
	}
	return out
}

func mustDecode(t *testing.T, s string, opts ...DecoderOption) normalizedValue {
	t.Helper()
	v, err := DecodeString(s, opts...)
	if err != nil {
		t.Fatalf("DecodeString(%q): %v", s, err)
	}
	return v
}

func TestRoundTripScalars(t *testing.T) {
	cases := []any{
		nil,
		true,
		false,
		"hello",
		int64(42),
		-17,
		3.14,
	}
	for _, v := range cases {
		want, err := normalize(v)
		if err != nil {
			t.Fatalf("normalize(%v): %v", v, err)
		}
		doc := mustMarshal(t, v)
		got := mustDecode(t, doc)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch for %v: got %#v, want %#v", v, got, want)
		}
	}
}

func TestRoundTripInlineArray(t *testing.T) {
	values := []any{1, 2, 3}
	obj := NewObject(Field{Key: "nums", Value: values})
	doc := mustMarshal(t, obj)

	got := mustDecode(t, doc)
	gotObj, ok := got.(Object)
	if !ok {
		t.Fatalf("expected Object, got %T", got)
	}
	arr, ok := gotObj.Get("nums")
	if !ok {
		t.Fatalf("missing field nums")
	}
	items, ok := arr.([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3-element array, got %#v", arr)
	}
	for i, want := range []string{"1", "2", "3"} {
		n, ok := items[i].(Number)
		if !ok || n.Literal != want {
			t.Fatalf("item %d: got %#v, want Number(%s)", i, items[i], want)
		}
	}
}

func TestRoundTripTabularArray(t *testing.T) {
	rows := []any{
		NewObject(Field{Key: "id", Value: 1}, Field{Key: "name", Value: "alice"}),
		NewObject(Field{Key: "id", Value: 2}, Field{Key: "name", Value: "bob"}),
	}
	obj := NewObject(Field{Key: "users", Value: rows})
	doc := mustMarshal(t, obj)

	got := mustDecode(t, doc)
	gotObj := got.(Object)
	arr, _ := gotObj.Get("users")
	items := arr.([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	row0 := items[0].(Object)
	name, _ := row0.Get("name")
	if name.(string) != "alice" {
		t.Fatalf("expected alice, got %#v", name)
	}
}

func TestRoundTripArrayOfPrimitiveArrays(t *testing.T) {
	matrix := []any{
		[]any{1, 2},
		[]any{3, 4, 5},
	}
	obj := NewObject(Field{Key: "matrix", Value: matrix})
	doc := mustMarshal(t, obj)

	got := mustDecode(t, doc)
	gotObj := got.(Object)
	arr, _ := gotObj.Get("matrix")
	items := arr.([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	row1 := items[1].([]any)
	if len(row1) != 3 {
		t.Fatalf("expected 3 values in second row, got %d", len(row1))
	}
}

func TestRoundTripGeneralList(t *testing.T) {
	items := []any{
		NewObject(Field{Key: "a", Value: 1}, Field{Key: "b", Value: 2}),
		NewObject(Field{Key: "a", Value: 3}), // heterogeneous shape, forces general list
	}
	obj := NewObject(Field{Key: "items", Value: items})
	doc := mustMarshal(t, obj)

	got := mustDecode(t, doc)
	gotObj := got.(Object)
	arr, _ := gotObj.Get("items")
	decodedItems := arr.([]any)
	if len(decodedItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(decodedItems))
	}
}

func TestRoundTripNestedObject(t *testing.T) {
	obj := NewObject(
		Field{Key: "outer", Value: NewObject(
			Field{Key: "inner", Value: "value"},
		)},
	)
	doc := mustMarshal(t, obj)
	got := mustDecode(t, doc).(Object)
	outer, _ := got.Get("outer")
	inner, _ := outer.(Object).Get("inner")
	if inner.(string) != "value" {
		t.Fatalf("expected value, got %#v", inner)
	}
}

func TestRoundTripEmptyObjectAndArray(t *testing.T) {
	obj := NewObject(
		Field{Key: "empty_obj", Value: Object{}},
		Field{Key: "empty_arr", Value: []any{}},
	)
	doc := mustMarshal(t, obj)
	got := mustDecode(t, doc).(Object)

	emptyObj, ok := got.Get("empty_obj")
	if !ok || !emptyObj.(Object).IsEmpty() {
		t.Fatalf("expected empty object, got %#v", emptyObj)
	}
	emptyArr, ok := got.Get("empty_arr")
	if !ok {
		t.Fatalf("missing empty_arr")
	}
	if arr, ok := emptyArr.([]any); !ok || len(arr) != 0 {
		t.Fatalf("expected empty array, got %#v", emptyArr)
	}
}

func TestRoundTripPreservesFieldOrder(t *testing.T) {
	obj := NewObject(
		Field{Key: "z", Value: 1},
		Field{Key: "a", Value: 2},
		Field{Key: "m", Value: 3},
	)
	doc := mustMarshal(t, obj)
	got := mustDecode(t, doc).(Object)
	keys := got.Keys()
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("got key order %v, want %v", keys, want)
	}
}

func TestMarshalStructEmbedding(t *testing.T) {
	type Base struct {
		ID int `toon:"id"`
	}
	type Item struct {
		Base
		Name string `toon:"name"`
	}
	doc, err := MarshalString(Item{Base: Base{ID: 7}, Name: "widget"})
	if err != nil {
		t.Fatalf("MarshalString: %v", err)
	}
	got := mustDecode(t, doc).(Object)
	id, ok := got.Get("id")
	if !ok {
		t.Fatalf("expected promoted field id, got %#v", got)
	}
	if n, ok := id.(Number); !ok || n.Literal != "7" {
		t.Fatalf("expected id=7, got %#v", id)
	}
}

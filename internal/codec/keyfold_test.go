package codec

import "testing"

func TestKeyFoldingCollapsesSingleChildChain(t *testing.T) {
	obj := NewObject(Field{Key: "a", Value: NewObject(
		Field{Key: "b", Value: NewObject(
			Field{Key: "c", Value: "leaf"},
		)},
	)})
	doc, err := MarshalString(obj, WithKeyFolding(KeyFoldingSafe(0)))
	if err != nil {
		t.Fatalf("MarshalString: %v", err)
	}
	want := "a.b.c: leaf"
	if doc != want {
		t.Fatalf("got %q, want %q", doc, want)
	}
}

func TestKeyFoldingRespectsFlattenDepth(t *testing.T) {
	obj := NewObject(Field{Key: "a", Value: NewObject(
		Field{Key: "b", Value: NewObject(
			Field{Key: "c", Value: "leaf"},
		)},
	)})
	doc, err := MarshalString(obj, WithKeyFolding(KeyFoldingSafe(2)))
	if err != nil {
		t.Fatalf("MarshalString: %v", err)
	}
	want := "a.b:\n  c: leaf"
	if doc != want {
		t.Fatalf("got %q, want %q", doc, want)
	}
}

func TestKeyFoldingSkipsOnSiblingCollision(t *testing.T) {
	obj := NewObject(
		Field{Key: "a", Value: NewObject(Field{Key: "b", Value: "leaf"})},
		Field{Key: "a.b", Value: "other"},
	)
	doc, err := MarshalString(obj, WithKeyFolding(KeyFoldingSafe(0)))
	if err != nil {
		t.Fatalf("MarshalString: %v", err)
	}
	want := "a:\n  b: leaf\na.b: other"
	if doc != want {
		t.Fatalf("got %q, want %q", doc, want)
	}
}

func TestExpandPathsInversesKeyFolding(t *testing.T) {
	doc := "a.b.c: leaf"
	value, err := DecodeString(doc, WithExpandPaths(ExpandPathsSafe))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	obj, ok := value.(Object)
	if !ok {
		t.Fatalf("expected Object, got %T", value)
	}
	a, ok := obj.Get("a")
	if !ok {
		t.Fatalf("missing a")
	}
	b, ok := a.(Object).Get("b")
	if !ok {
		t.Fatalf("missing a.b")
	}
	c, ok := b.(Object).Get("c")
	if !ok || c.(string) != "leaf" {
		t.Fatalf("expected c=leaf, got %#v", c)
	}
}

func TestExpandPathsOffLeavesDottedKeyAlone(t *testing.T) {
	doc := "a.b.c: leaf"
	value, err := DecodeString(doc)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	obj := value.(Object)
	got, ok := obj.Get("a.b.c")
	if !ok || got.(string) != "leaf" {
		t.Fatalf("expected dotted key preserved, got %#v", obj)
	}
}

func TestExpandPathsStrictCollision(t *testing.T) {
	// The plain "a" object establishes a.b = 2 first; the dotted "a.b" field
	// that follows then collides with the segment already inserted there.
	doc := "a:\n  b: 2\na.b: 1"
	_, err := DecodeString(doc, WithExpandPaths(ExpandPathsSafe))
	if err == nil {
		t.Fatal("expected strict-mode collision error")
	}
}

package codec

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeRejectsTabIndentation(t *testing.T) {
	_, err := DecodeString("key: value\n\tnested: 1")
	if err == nil {
		t.Fatal("expected error for tab indentation")
	}
	var decErr *DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodingError, got %T", err)
	}
	if !strings.Contains(decErr.Message, "tabs are not allowed") {
		t.Errorf("unexpected message: %s", decErr.Message)
	}
}

func TestDecodeRejectsNonMultipleIndent(t *testing.T) {
	_, err := DecodeString("outer:\n   inner: 1", WithDecoderIndent(2))
	if err == nil {
		t.Fatal("expected error for non-multiple indentation")
	}
}

func TestStrictModeRejectsLengthMismatch(t *testing.T) {
	_, err := DecodeString("nums[3]: 1,2")
	if err == nil {
		t.Fatal("expected strict-mode length mismatch error")
	}
}

func TestLooseModeToleratesLengthMismatch(t *testing.T) {
	_, err := DecodeString("nums[3]: 1,2", WithStrict(false))
	if err != nil {
		t.Fatalf("expected loose mode to tolerate mismatch, got %v", err)
	}
}

func TestStrictModeRejectsTabularRowCountMismatch(t *testing.T) {
	doc := "users[2]{id,name}:\n  1,alice\n"
	_, err := DecodeString(doc)
	if err == nil {
		t.Fatal("expected error for missing row")
	}
}

func TestStrictModeRejectsAmbiguousHeaderWhitespace(t *testing.T) {
	_, err := DecodeString("nums[3 \t]: 1,2,3")
	if err == nil {
		t.Fatal("expected error for ambiguous whitespace in header length")
	}
}

func TestTabDelimiterHeaderDetected(t *testing.T) {
	doc := "nums[3\t]: 1\t2\t3"
	value, err := DecodeString(doc)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	obj, ok := value.(Object)
	if !ok {
		t.Fatalf("expected Object root, got %T", value)
	}
	arr, ok := obj.Get("nums")
	if !ok {
		t.Fatalf("missing nums field")
	}
	items, ok := arr.([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 items, got %#v", arr)
	}
}

func TestDecodeRejectsTrailingContent(t *testing.T) {
	_, err := DecodeString("a: 1\nb: 2\n  c: 3")
	// "  c: 3" is indented under a line that isn't an object/array opener at
	// that depth from root level 0, which parseObject's loop simply stops
	// consuming, leaving it as unconsumed trailing content.
	if err == nil {
		t.Fatal("expected trailing-content error")
	}
}

func TestUnmarshalStruct(t *testing.T) {
	type Person struct {
		Name string `toon:"name"`
		Age  int    `toon:"age"`
	}
	doc := "name: alice\nage: 30"
	var p Person
	if err := UnmarshalString(doc, &p); err != nil {
		t.Fatalf("UnmarshalString: %v", err)
	}
	if p.Name != "alice" || p.Age != 30 {
		t.Fatalf("got %+v", p)
	}
}

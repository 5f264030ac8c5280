package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTripObjectStructureMatchesNormalizedInput(t *testing.T) {
	type Address struct {
		City string `toon:"city"`
		Zip  string `toon:"zip"`
	}
	type Person struct {
		Name    string  `toon:"name"`
		Age     int     `toon:"age"`
		Address Address `toon:"address"`
	}

	p := Person{Name: "alice", Age: 30, Address: Address{City: "nyc", Zip: "10001"}}

	want, err := normalize(p)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	doc, err := MarshalString(p)
	if err != nil {
		t.Fatalf("MarshalString: %v", err)
	}
	got, err := DecodeString(doc)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

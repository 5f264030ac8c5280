package codec

import "testing"

func TestNeedsQuoting(t *testing.T) {
	cases := []struct {
		in    string
		delim Delimiter
		want  bool
	}{
		{"hello", DelimiterComma, false},
		{"", DelimiterComma, true},
		{"true", DelimiterComma, true},
		{"false", DelimiterComma, true},
		{"null", DelimiterComma, true},
		{"42", DelimiterComma, true},
		{"-17", DelimiterComma, true},
		{"3.14", DelimiterComma, true},
		{"01", DelimiterComma, true},
		{" leading", DelimiterComma, true},
		{"trailing ", DelimiterComma, true},
		{"a,b", DelimiterComma, true},
		{"a,b", DelimiterPipe, false},
		{"a|b", DelimiterPipe, true},
		{"a:b", DelimiterComma, true},
		{`has"quote`, DelimiterComma, true},
		{"has[bracket", DelimiterComma, true},
		{"has\ttab", DelimiterComma, true},
		{"plainword", DelimiterComma, false},
	}
	for _, c := range cases {
		got := needsQuoting(c.in, c.delim)
		if got != c.want {
			t.Errorf("needsQuoting(%q, %v) = %v, want %v", c.in, c.delim, got, c.want)
		}
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	cases := []string{
		"hello",
		`has "quotes"`,
		"has\nnewline",
		"has\ttab",
		"has\\backslash",
		"",
	}
	for _, s := range cases {
		quoted, err := quoteString(s)
		if err != nil {
			t.Fatalf("quoteString(%q): %v", s, err)
		}
		got, err := unquoteString(quoted)
		if err != nil {
			t.Fatalf("unquoteString(%q): %v", quoted, err)
		}
		if got != s {
			t.Errorf("round trip mismatch: got %q, want %q", got, s)
		}
	}
}

func TestUnquoteStringErrors(t *testing.T) {
	cases := []string{
		`"unterminated`,
		`"bad\escape"`,
		`no quotes at all`,
	}
	for _, s := range cases {
		if _, err := unquoteString(s); err == nil {
			t.Errorf("unquoteString(%q): expected error, got nil", s)
		}
	}
}

func TestIsIdentifierKeyVsSegment(t *testing.T) {
	if !isIdentifierKey("a.b.c") {
		t.Error("a.b.c should be a valid identifier key")
	}
	if isIdentifierSegment("a.b.c") {
		t.Error("a.b.c should not be a valid identifier segment")
	}
	if !isIdentifierSegment("a_b") {
		t.Error("a_b should be a valid identifier segment")
	}
	if isIdentifierKey("1abc") {
		t.Error("1abc should not be a valid identifier key")
	}
}

func TestIsJSONNumberLiteral(t *testing.T) {
	valid := []string{"0", "42", "-17", "3.14", "1e10", "1.5e-3", "-0.0"}
	invalid := []string{"", "01", "1.", ".5", "1e", "abc", "1,2"}
	for _, s := range valid {
		if !isJSONNumberLiteral(s) {
			t.Errorf("expected %q to be a valid JSON number literal", s)
		}
	}
	for _, s := range invalid {
		if isJSONNumberLiteral(s) {
			t.Errorf("expected %q to be an invalid JSON number literal", s)
		}
	}
}

package codec

import "strings"

// isIdentifierKey reports whether k may be emitted as a bare key (Section
// 3): it must start with an ASCII letter or underscore, followed only by
// ASCII alphanumerics, underscore, or dot.
func isIdentifierKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if i == 0 {
			if !isAlpha(c) && c != '_' {
				return false
			}
			continue
		}
		if !isAlphaNumeric(c) && c != '_' && c != '.' {
			return false
		}
	}
	return true
}

// isIdentifierSegment is isIdentifierKey without the allowance for '.',
// used by key folding and path expansion (Section 3).
func isIdentifierSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 0 {
			if !isAlpha(c) && c != '_' {
				return false
			}
			continue
		}
		if !isAlphaNumeric(c) && c != '_' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

// encodeKey renders k as a TOON key literal: bare if it is an identifier
// key, quoted and escaped otherwise.
func encodeKey(k string) (string, error) {
	if isIdentifierKey(k) {
		return k, nil
	}
	return quoteString(k)
}

// encodeString renders s as a TOON primitive literal under the active
// delimiter, applying the bareness rules of Section 4.1.
func encodeString(s string, delim Delimiter) (string, error) {
	if !needsQuoting(s, delim) {
		return s, nil
	}
	return quoteString(s)
}

func needsQuoting(s string, delim Delimiter) bool {
	if s == "" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if looksNumeric(s) {
		return true
	}
	if strings.ContainsAny(s, ":\"\\[]{}") {
		return true
	}
	if strings.ContainsAny(s, "\n\r\t") {
		return true
	}
	if strings.HasPrefix(s, "-") {
		return true
	}
	if strings.ContainsRune(s, delim.rune()) {
		return true
	}
	return false
}

// looksNumeric is the conservative "numeric-like" test of Section 4.1: s
// parses under the JSON number grammar, or s has length >= 2, starts with
// '0', and consists solely of ASCII digits (a zero-padded id guard).
func looksNumeric(s string) bool {
	if isJSONNumberLiteral(s) {
		return true
	}
	if len(s) >= 2 && s[0] == '0' {
		allDigits := true
		for i := 0; i < len(s); i++ {
			if !isDigitByte(s[i]) {
				allDigits = false
				break
			}
		}
		if allDigits {
			return true
		}
	}
	return false
}

// isJSONNumberLiteral reports whether s is a valid JSON number token:
// -?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?
func isJSONNumberLiteral(s string) bool {
	i := 0
	n := len(s)
	if n == 0 {
		return false
	}
	if s[i] == '-' {
		i++
	}
	if i >= n || !isDigitByte(s[i]) {
		return false
	}
	if s[i] == '0' {
		i++
	} else {
		for i < n && isDigitByte(s[i]) {
			i++
		}
	}
	if i < n && s[i] == '.' {
		i++
		if i >= n || !isDigitByte(s[i]) {
			return false
		}
		for i < n && isDigitByte(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= n || !isDigitByte(s[i]) {
			return false
		}
		for i < n && isDigitByte(s[i]) {
			i++
		}
	}
	return i == n
}

func quoteString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}

// unquoteString removes surrounding quotes and unescapes a TOON quoted
// string per the \\ \" \n \r \t escape table (Section 4.1, 4.3.3).
func unquoteString(token string) (string, error) {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return "", errDecode("invalid quoted string %q", token)
	}
	var b strings.Builder
	b.Grow(len(token) - 2)
	escaped := false
	for i := 1; i < len(token)-1; i++ {
		ch := token[i]
		if escaped {
			switch ch {
			case '\\', '"':
				b.WriteByte(ch)
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", errDecode("invalid escape sequence \\%c", ch)
			}
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(ch)
	}
	if escaped {
		return "", errDecode("unterminated escape sequence in %q", token)
	}
	return b.String(), nil
}

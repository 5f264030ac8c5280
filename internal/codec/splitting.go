package codec

import "strings"

// indexOutsideQuotes returns the byte index of the first unquoted
// occurrence of target in s, tracking "..." quote state and \-escapes
// inside quotes, or -1 if none is found.
func indexOutsideQuotes(s string, target byte) int {
	inQuotes := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inQuotes:
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case !inQuotes && c == target:
			return i
		}
	}
	return -1
}

// splitDelimited implements Section 4.3.2: it walks s, toggling quote state
// on unescaped '"', carrying \x escape pairs through inside quotes, and
// splitting on delim only outside quotes. Each resulting cell is trimmed.
func splitDelimited(s string, delim rune) ([]string, error) {
	var cells []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes && r == '\\' && i+1 < len(runes):
			cur.WriteRune(r)
			i++
			cur.WriteRune(runes[i])
		case r == '"':
			cur.WriteRune(r)
			inQuotes = !inQuotes
		case !inQuotes && r == delim:
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, errDecode("unterminated quoted string in delimited values")
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells, nil
}

// isTabularRowLine implements the row/field discriminator of Section 4.3.1:
// a line is a tabular row iff no unquoted colon appears at all, or the first
// unquoted delimiter comes before the first unquoted colon.
func isTabularRowLine(text string, delim rune) bool {
	inQuotes := false
	escaped := false
	var firstDelim, firstColon = -1, -1
	for i, r := range text {
		if inQuotes {
			if escaped {
				escaped = false
				continue
			}
			switch r {
			case '\\':
				escaped = true
			case '"':
				inQuotes = false
			}
			continue
		}
		switch r {
		case '"':
			inQuotes = true
		case ':':
			if firstColon == -1 {
				firstColon = i
			}
		case delim:
			if firstDelim == -1 {
				firstDelim = i
			}
		}
		if firstDelim != -1 && firstColon != -1 {
			break
		}
	}
	if firstColon == -1 {
		return true
	}
	if firstDelim == -1 {
		return false
	}
	return firstDelim < firstColon
}

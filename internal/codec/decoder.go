package codec

import (
	"strconv"
	"strings"
)

// Decoder parses TOON documents into Go values.
type Decoder struct {
	cfg decoderOptions
}

// NewDecoder constructs a Decoder using the supplied options.
func NewDecoder(opts ...DecoderOption) *Decoder {
	cfg := defaultDecoderOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decoder{cfg: cfg}
}

// Decode parses data as a TOON document and returns its tree value: nil,
// bool, string, an arbitrary-precision number, Object, or []any.
func (d *Decoder) Decode(data []byte) (any, error) {
	return d.DecodeString(string(data))
}

// DecodeString is equivalent to Decode but accepts a string.
func (d *Decoder) DecodeString(input string) (any, error) {
	state, err := newDecodeState(input, d.cfg)
	if err != nil {
		return nil, err
	}
	value, err := state.parseRoot()
	if err != nil {
		return nil, err
	}
	if state.index < len(state.lines) {
		trailing := state.lines[state.index]
		return nil, errorAtf(trailing.number, "unexpected content after document")
	}
	if d.cfg.expandPaths == ExpandPathsSafe {
		value, err = expandPaths(value, d.cfg.strict)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Decode parses data using a temporary decoder.
func Decode(data []byte, opts ...DecoderOption) (any, error) {
	return NewDecoder(opts...).Decode(data)
}

// DecodeString parses input using a temporary decoder.
func DecodeString(input string, opts ...DecoderOption) (any, error) {
	return NewDecoder(opts...).DecodeString(input)
}

// Validate decodes input and discards the result, reporting only whether it
// is well-formed TOON under the supplied options.
func Validate(data []byte, opts ...DecoderOption) error {
	_, err := Decode(data, opts...)
	return err
}

type line struct {
	depth  int
	text   string
	number int
}

type decodeState struct {
	cfg   decoderOptions
	lines []line
	index int
}

func newDecodeState(input string, cfg decoderOptions) (*decodeState, error) {
	var lines []line
	raw := strings.Split(input, "\n")
	for i, text := range raw {
		lineNumber := i + 1
		if strings.TrimSpace(text) == "" {
			continue
		}

		indentChars := 0
		for j := 0; j < len(text); j++ {
			switch text[j] {
			case ' ':
				indentChars++
				continue
			case '\t':
				return nil, errorAt(lineNumber, "tabs are not allowed for indentation")
			}
			break
		}

		if indentChars%cfg.indentSize != 0 {
			return nil, errorAtf(lineNumber, "indentation must be a multiple of %d spaces", cfg.indentSize)
		}

		depth := indentChars / cfg.indentSize
		content := strings.TrimRight(text[indentChars:], " \t\r")
		if content == "" {
			continue
		}

		lines = append(lines, line{depth: depth, text: content, number: lineNumber})
	}
	return &decodeState{cfg: cfg, lines: lines}, nil
}

func (s *decodeState) peek() (line, bool) {
	if s.index >= len(s.lines) {
		return line{}, false
	}
	return s.lines[s.index], true
}

func (s *decodeState) parseRoot() (normalizedValue, error) {
	if len(s.lines) == 0 {
		return Object{}, nil
	}

	first := s.lines[0]
	if strings.HasPrefix(first.text, "[") {
		header, err := parseHeader(first.text, false, first.number, s.cfg.strict)
		if err != nil {
			return nil, err
		}
		if header == nil {
			return nil, errorAtf(first.number, "expected array header")
		}
		s.index++
		return s.consumeArray(*header, 0)
	}

	if indexOutsideQuotes(first.text, ':') == -1 {
		value, err := parsePrimitiveToken(strings.TrimSpace(first.text))
		if err != nil {
			return nil, errorWrap(first.number, err)
		}
		s.index = 1
		return value, nil
	}

	return s.parseObject(0)
}

func (s *decodeState) parseObject(depth int) (Object, error) {
	obj := Object{}
	for {
		ln, ok := s.peek()
		if !ok || ln.depth != depth {
			break
		}

		header, err := s.parseHeaderForLine(ln, true)
		if err != nil {
			return Object{}, err
		}
		if header != nil {
			s.index++
			if header.key == nil {
				return Object{}, errorAtf(ln.number, "array header requires a key")
			}
			value, err := s.consumeArray(*header, depth)
			if err != nil {
				return Object{}, err
			}
			obj = obj.With(*header.key, value)
			continue
		}

		if err := s.consumeField(&obj, depth); err != nil {
			return Object{}, err
		}
	}
	return obj, nil
}

func (s *decodeState) consumeField(obj *Object, depth int) error {
	ln, ok := s.peek()
	if !ok {
		return errDecode("unexpected end of document")
	}

	if header, err := s.parseHeaderForLine(ln, true); err != nil {
		return err
	} else if header != nil {
		s.index++
		if header.key == nil {
			return errorAtf(ln.number, "array header requires a key")
		}
		value, err := s.consumeArray(*header, depth)
		if err != nil {
			return err
		}
		*obj = obj.With(*header.key, value)
		return nil
	}

	rawKey, rest, ok := splitKeyValue(ln.text)
	if !ok {
		return errorAtf(ln.number, "expected `key: value`")
	}
	key, err := parseKeyToken(rawKey)
	if err != nil {
		return errorWrap(ln.number, err)
	}

	s.index++

	if strings.TrimSpace(rest) == "" {
		next, hasNext := s.peek()
		if !hasNext || next.depth <= depth {
			*obj = obj.With(key, Object{})
			return nil
		}
		value, err := s.parseValueBlock(depth + 1)
		if err != nil {
			return err
		}
		*obj = obj.With(key, value)
		return nil
	}

	value, err := parsePrimitiveToken(strings.TrimSpace(rest))
	if err != nil {
		return errorWrap(ln.number, err)
	}
	*obj = obj.With(key, value)
	return nil
}

func (s *decodeState) parseValueBlock(depth int) (normalizedValue, error) {
	ln, ok := s.peek()
	if !ok || ln.depth != depth {
		return Object{}, nil
	}

	if strings.HasPrefix(ln.text, "[") {
		header, err := parseHeader(ln.text, false, ln.number, s.cfg.strict)
		if err != nil {
			return nil, err
		}
		if header == nil {
			return nil, errorAtf(ln.number, "expected array header")
		}
		s.index++
		return s.consumeArray(*header, depth-1)
	}

	if _, _, ok := splitKeyValue(ln.text); ok {
		return s.parseObject(depth)
	}

	value, err := parsePrimitiveToken(strings.TrimSpace(ln.text))
	if err != nil {
		return nil, errorWrap(ln.number, err)
	}
	s.index++
	return value, nil
}

func (s *decodeState) parseHeaderForLine(ln line, expectKey bool) (*arrayHeader, error) {
	if !strings.Contains(ln.text, "[") {
		return nil, nil
	}
	return parseHeader(ln.text, expectKey, ln.number, s.cfg.strict)
}

func (s *decodeState) consumeArray(header arrayHeader, containerDepth int) (normalizedValue, error) {
	if header.inlineValues != nil {
		return s.parseInlineArray(header.length, header.delimiter, *header.inlineValues, header.line)
	}
	if header.fields != nil {
		return s.parseTabularArray(header, containerDepth)
	}
	return s.parseListArray(header, containerDepth)
}

func (s *decodeState) parseInlineArray(length int, delim Delimiter, values string, lineNumber int) (normalizedValue, error) {
	cells, err := splitDelimited(values, delim.rune())
	if err != nil {
		return nil, errorWrap(lineNumber, err)
	}
	if s.cfg.strict && len(cells) != length {
		return nil, errorAtf(lineNumber, "expected %d values but found %d", length, len(cells))
	}

	out := make([]any, 0, len(cells))
	for _, cell := range cells {
		value, err := parsePrimitiveToken(strings.TrimSpace(cell))
		if err != nil {
			return nil, errorWrap(lineNumber, err)
		}
		out = append(out, value)
	}
	return out, nil
}

func (s *decodeState) parseTabularArray(header arrayHeader, containerDepth int) (normalizedValue, error) {
	fields := header.fields
	rowDepth := containerDepth + 1
	var rows []any

	for {
		ln, ok := s.peek()
		if !ok || ln.depth != rowDepth {
			break
		}
		if !isTabularRowLine(ln.text, header.delimiter.rune()) {
			break
		}

		cells, err := splitDelimited(ln.text, header.delimiter.rune())
		if err != nil {
			return nil, errorWrap(ln.number, err)
		}
		if s.cfg.strict && len(cells) != len(fields) {
			return nil, errorAtf(ln.number, "expected %d cells but found %d", len(fields), len(cells))
		}

		row := Object{}
		for i, field := range fields {
			cell := ""
			if i < len(cells) {
				cell = strings.TrimSpace(cells[i])
			}
			value, err := parsePrimitiveToken(cell)
			if err != nil {
				return nil, errorWrap(ln.number, err)
			}
			row = row.With(field, value)
		}

		rows = append(rows, row)
		s.index++
	}

	if s.cfg.strict && len(rows) != header.length {
		return nil, errorAtf(header.line, "expected %d rows but found %d", header.length, len(rows))
	}
	return rows, nil
}

func (s *decodeState) parseListArray(header arrayHeader, containerDepth int) (normalizedValue, error) {
	rowDepth := containerDepth + 1
	var items []any

	for {
		ln, ok := s.peek()
		if !ok || ln.depth != rowDepth {
			break
		}
		if ln.text != "-" && !strings.HasPrefix(ln.text, "- ") {
			return nil, errorAtf(ln.number, "expected '-' to start list item")
		}

		remainder := strings.TrimSpace(strings.TrimPrefix(ln.text, "-"))
		s.index++

		var value normalizedValue
		switch {
		case remainder == "":
			obj, err := s.parseObject(rowDepth + 1)
			if err != nil {
				return nil, err
			}
			value = obj
		default:
			subHeader, err := parseHeader(remainder, false, ln.number, s.cfg.strict)
			if err != nil {
				return nil, err
			}
			switch {
			case subHeader != nil:
				key := subHeader.key
				arrVal, err := s.consumeNestedHeader(*subHeader, rowDepth)
				if err != nil {
					return nil, err
				}
				if key != nil {
					obj := Object{}.With(*key, arrVal)
					for {
						next, ok := s.peek()
						if !ok || next.depth != rowDepth+1 {
							break
						}
						if err := s.consumeField(&obj, rowDepth+1); err != nil {
							return nil, err
						}
					}
					value = obj
				} else {
					value = arrVal
				}
			case indexOutsideQuotes(remainder, ':') != -1:
				obj, err := s.parseInlineObjectInList(remainder, rowDepth, ln.number)
				if err != nil {
					return nil, err
				}
				value = obj
			default:
				prim, err := parsePrimitiveToken(remainder)
				if err != nil {
					return nil, errorWrap(ln.number, err)
				}
				value = prim
			}
		}

		items = append(items, value)
	}

	if s.cfg.strict && len(items) != header.length {
		return nil, errorAtf(header.line, "expected %d list items but found %d", header.length, len(items))
	}
	return items, nil
}

// consumeNestedHeader resumes an array header already parsed from a
// list-item's remainder; the index was advanced past the "- " line when the
// header text was captured, so it is not advanced again here.
func (s *decodeState) consumeNestedHeader(header arrayHeader, rowDepth int) (normalizedValue, error) {
	header.key = nil
	return s.consumeArray(header, rowDepth)
}

func (s *decodeState) parseInlineObjectInList(remainder string, rowDepth int, lineNumber int) (normalizedValue, error) {
	rawKey, rest, ok := splitKeyValue(remainder)
	if !ok {
		return nil, errorAtf(lineNumber, "invalid list object syntax")
	}
	key, err := parseKeyToken(rawKey)
	if err != nil {
		return nil, errorWrap(lineNumber, err)
	}

	obj := Object{}
	if strings.TrimSpace(rest) == "" {
		value, err := s.parseValueBlock(rowDepth + 2)
		if err != nil {
			return nil, err
		}
		obj = obj.With(key, value)
	} else {
		value, err := parsePrimitiveToken(strings.TrimSpace(rest))
		if err != nil {
			return nil, errorWrap(lineNumber, err)
		}
		obj = obj.With(key, value)
	}

	for {
		next, ok := s.peek()
		if !ok || next.depth != rowDepth+1 {
			break
		}
		if err := s.consumeField(&obj, rowDepth+1); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// arrayHeader is the parsed form of Section 4 "Array header grammar":
// Key?[Len Suffix?]({Field(,|) …})? : optionally followed by inline values.
type arrayHeader struct {
	key          *string
	length       int
	delimiter    Delimiter
	fields       []string
	inlineValues *string
	line         int
}

func parseHeader(text string, expectKey bool, lineNumber int, strict bool) (*arrayHeader, error) {
	colonIdx := indexOutsideQuotes(text, ':')
	if colonIdx == -1 {
		return nil, nil
	}

	before := strings.TrimRight(text[:colonIdx], " \t")
	after := strings.TrimLeft(text[colonIdx+1:], " \t")

	if !strings.Contains(before, "[") {
		return nil, nil
	}

	bracketIdx := strings.LastIndex(before, "[")

	var rawKey *string
	var bracketPart string
	if bracketIdx == 0 {
		bracketPart = before
	} else {
		keyText := strings.TrimRight(before[:bracketIdx], " \t")
		key, err := parseKeyToken(keyText)
		if err != nil {
			return nil, errorWrap(lineNumber, err)
		}
		rawKey = &key
		bracketPart = before[bracketIdx:]
	}

	if expectKey && rawKey == nil {
		return nil, errorAtf(lineNumber, "array header must include a key")
	}

	closing := strings.Index(bracketPart, "]")
	if closing == -1 {
		return nil, errorAtf(lineNumber, "missing closing ']'")
	}

	length, delim, err := parseHeaderLength(bracketPart[1:closing], lineNumber, strict)
	if err != nil {
		return nil, err
	}

	remainder := strings.TrimLeft(bracketPart[closing+1:], " \t")
	var fields []string
	if strings.HasPrefix(remainder, "{") {
		closingBrace := strings.Index(remainder, "}")
		if closingBrace == -1 {
			return nil, errorAtf(lineNumber, "missing '}' in field list")
		}
		fieldSegment := remainder[1:closingBrace]
		list, err := parseFieldList(fieldSegment, delim, lineNumber)
		if err != nil {
			return nil, err
		}
		fields = list
		remainder = strings.TrimLeft(remainder[closingBrace+1:], " \t")
	}

	if remainder != "" {
		return nil, errorAtf(lineNumber, "unexpected content after array header")
	}

	var inlineValues *string
	if after != "" {
		inlineValues = &after
	}

	return &arrayHeader{
		key:          rawKey,
		length:       length,
		delimiter:    delim,
		fields:       fields,
		inlineValues: inlineValues,
		line:         lineNumber,
	}, nil
}

// parseHeaderLength reads the "<Len><Suffix?>" bracket body. The delimiter
// suffix is a literal tab or pipe byte immediately following the decimal
// length; under strict mode any other whitespace inside the bracket is
// rejected rather than silently trimmed, per the Section 8 open question on
// ambiguous tab-delimiter headers.
func parseHeaderLength(raw string, lineNumber int, strict bool) (int, Delimiter, error) {
	delim := DelimiterComma
	body := raw
	if strings.HasSuffix(body, "\t") {
		delim = DelimiterTab
		body = body[:len(body)-1]
	} else if strings.HasSuffix(body, "|") {
		delim = DelimiterPipe
		body = body[:len(body)-1]
	}

	trimmed := strings.TrimSpace(body)
	if strict && trimmed != body {
		return 0, DelimiterComma, errorAtf(lineNumber, "ambiguous whitespace in array header length")
	}

	length, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, DelimiterComma, errorAtf(lineNumber, "invalid array length %q", trimmed)
	}
	return length, delim, nil
}

func parseFieldList(segment string, delim Delimiter, lineNumber int) ([]string, error) {
	cells, err := splitDelimited(segment, delim.rune())
	if err != nil {
		return nil, errorWrap(lineNumber, err)
	}
	fields := make([]string, 0, len(cells))
	for _, raw := range cells {
		key, err := parseKeyToken(strings.TrimSpace(raw))
		if err != nil {
			return nil, errorAtf(lineNumber, "invalid field name: %v", err)
		}
		fields = append(fields, key)
	}
	return fields, nil
}

// splitKeyValue locates the first unquoted ':' in text and returns the
// trimmed key and value substrings around it.
func splitKeyValue(text string) (string, string, bool) {
	idx := indexOutsideQuotes(text, ':')
	if idx == -1 {
		return "", "", false
	}
	key := strings.TrimRight(text[:idx], " \t")
	value := strings.TrimLeft(text[idx+1:], " \t")
	return key, value, true
}

func parseKeyToken(raw string) (string, error) {
	if strings.HasPrefix(raw, "\"") {
		return unquoteString(raw)
	}
	if raw == "" {
		return "", errDecode("key cannot be empty")
	}
	return raw, nil
}

// parsePrimitiveToken parses a single scalar cell or inline value per
// Section 4.1: quoted strings, the true/false/null literals, numeric
// literals (canonicalized to their decimal form), and bare strings.
func parsePrimitiveToken(token string) (normalizedValue, error) {
	if strings.HasPrefix(token, "\"") {
		s, err := unquoteString(token)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}

	if isJSONNumberLiteral(token) {
		canon, err := canonicalizeDecimalString(token)
		if err != nil {
			return nil, err
		}
		return Number{Literal: canon}, nil
	}

	return token, nil
}

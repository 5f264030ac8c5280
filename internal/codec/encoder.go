package codec

import (
	"strconv"
	"strings"
)

// Encoder serializes Go values as TOON documents.
type Encoder struct {
	cfg encoderOptions
}

// NewEncoder constructs an Encoder using the supplied options.
func NewEncoder(opts ...EncoderOption) *Encoder {
	cfg := defaultEncoderOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{cfg: cfg}
}

// Marshal renders v into a TOON document. v is normalized to the tree-value
// data model first (Section 3), then encoded under the concrete syntax
// rules of Section 4.2. No trailing newline is appended.
func (e *Encoder) Marshal(v any) ([]byte, error) {
	normalized, err := normalize(v)
	if err != nil {
		return nil, err
	}
	state := &encodeState{cfg: e.cfg}
	if err := state.encodeRoot(normalized); err != nil {
		return nil, err
	}
	return []byte(strings.Join(state.lines, "\n")), nil
}

// MarshalString is equivalent to Marshal but returns a string.
func (e *Encoder) MarshalString(v any) (string, error) {
	data, err := e.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Marshal encodes v using a temporary encoder.
func Marshal(v any, opts ...EncoderOption) ([]byte, error) {
	return NewEncoder(opts...).Marshal(v)
}

// MarshalString encodes v as a TOON document string using a temporary
// encoder.
func MarshalString(v any, opts ...EncoderOption) (string, error) {
	return NewEncoder(opts...).MarshalString(v)
}

type encodeState struct {
	cfg   encoderOptions
	lines []string
}

func (s *encodeState) emit(line string) {
	s.lines = append(s.lines, line)
}

func (s *encodeState) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*s.cfg.indentSize)
}

// encodeRoot dispatches per Section 4.2 "Root dispatch".
func (s *encodeState) encodeRoot(value normalizedValue) error {
	switch val := value.(type) {
	case nil, bool, string, Number:
		token, err := s.renderPrimitive(val)
		if err != nil {
			return err
		}
		s.emit(token)
	case Object:
		if val.IsEmpty() {
			return nil
		}
		return s.encodeObjectFields(val, 0)
	case []any:
		return s.encodeArray("", val, 0, arrayContextNormal(0))
	default:
		return errEncoding("unsupported root value %T", value)
	}
	return nil
}

func (s *encodeState) renderPrimitive(value normalizedValue) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case Number:
		return v.Literal, nil
	case string:
		return encodeString(v, s.cfg.documentDelimiter)
	default:
		return "", errEncoding("expected primitive value, found %T", value)
	}
}

// arrayContext distinguishes a normal array header (column == depth) from
// one emitted as the first field of a list item, whose header column
// equals the owning "- " dash (Section 4.2 "List-item first-field array
// context").
type arrayContext struct {
	headerDepth int
	listFirst   bool
}

func arrayContextNormal(depth int) arrayContext      { return arrayContext{headerDepth: depth} }
func arrayContextListFirst(depth int) arrayContext   { return arrayContext{headerDepth: depth, listFirst: true} }
func (c arrayContext) rowDepth() int                 { return c.headerDepth + 1 }
func (c arrayContext) prefix() string {
	if c.listFirst {
		return "- "
	}
	return ""
}

func (s *encodeState) encodeObjectFields(obj Object, depth int) error {
	fields := s.cfg.keyFolding
	_ = fields
	i := 0
	for i < len(obj.Fields) {
		field := obj.Fields[i]
		key, value, consumedFold := s.foldKey(field.Key, field.Value, obj)
		if err := s.encodeNamedValue(key, value, depth); err != nil {
			return err
		}
		_ = consumedFold
		i++
	}
	return nil
}

func (s *encodeState) encodeNamedValue(key string, value normalizedValue, depth int) error {
	switch val := value.(type) {
	case nil, bool, string, Number:
		keyLit, err := encodeKey(key)
		if err != nil {
			return err
		}
		token, err := s.renderPrimitive(val)
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + keyLit + ": " + token)
	case Object:
		keyLit, err := encodeKey(key)
		if err != nil {
			return err
		}
		if val.IsEmpty() {
			s.emit(s.indent(depth) + keyLit + ":")
			return nil
		}
		s.emit(s.indent(depth) + keyLit + ":")
		return s.encodeObjectFields(val, depth+1)
	case []any:
		return s.encodeArray(key, val, depth, arrayContextNormal(depth))
	default:
		return errEncoding("unsupported field %s of type %T", key, val)
	}
	return nil
}

// foldKey applies Safe-mode key folding (Section 4.2). It returns the
// (possibly dotted) key to emit and the value reached after folding.
func (s *encodeState) foldKey(key string, value normalizedValue, siblings Object) (string, normalizedValue, bool) {
	mode := s.cfg.keyFolding
	if !mode.enabled || !isIdentifierSegment(key) {
		return key, value, false
	}

	maxSegments := mode.maxSegments()
	segments := []string{key}
	current := value
	for maxSegments < 0 || len(segments) < maxSegments {
		obj, ok := current.(Object)
		if !ok || len(obj.Fields) != 1 {
			break
		}
		nextKey := obj.Fields[0].Key
		if !isIdentifierSegment(nextKey) {
			break
		}
		segments = append(segments, nextKey)
		current = obj.Fields[0].Value
	}

	if len(segments) == 1 {
		return key, value, false
	}

	candidate := strings.Join(segments, ".")
	for _, f := range siblings.Fields {
		if f.Key == candidate && f.Key != key {
			return key, value, false
		}
	}
	return candidate, current, true
}

// encodeArray chooses one of the four array shapes in precedence order
// (Section 4.2 "Array dispatch").
func (s *encodeState) encodeArray(key string, values []any, depth int, ctx arrayContext) error {
	delim := s.cfg.documentDelimiter
	keyLit := ""
	if key != "" {
		lit, err := encodeKey(key)
		if err != nil {
			return err
		}
		keyLit = lit
	}

	if isPrimitiveArray(values) {
		return s.emitInlineArray(keyLit, values, delim, ctx)
	}
	if fields, ok := detectTabular(values); ok {
		return s.emitTabularArray(keyLit, values, fields, delim, ctx)
	}
	if isArrayOfPrimitiveArrays(values) {
		return s.emitArrayOfArrays(keyLit, values, delim, ctx)
	}
	return s.emitGeneralList(keyLit, values, delim, ctx)
}

func (s *encodeState) emitInlineArray(keyLit string, values []any, delim Delimiter, ctx arrayContext) error {
	header := renderHeader(keyLit, len(values), delim, nil)
	line := s.indent(ctx.headerDepth) + ctx.prefix() + header
	if len(values) > 0 {
		tokens := make([]string, 0, len(values))
		for _, v := range values {
			tok, err := s.renderArrayPrimitive(v, delim)
			if err != nil {
				return err
			}
			tokens = append(tokens, tok)
		}
		line += " " + strings.Join(tokens, string(delim.rune()))
	}
	s.emit(line)
	return nil
}

func (s *encodeState) emitTabularArray(keyLit string, values []any, fields []string, delim Delimiter, ctx arrayContext) error {
	header := renderHeader(keyLit, len(values), delim, fields)
	s.emit(s.indent(ctx.headerDepth) + ctx.prefix() + header)
	rowDepth := ctx.rowDepth()
	for _, row := range values {
		obj := row.(Object)
		cells := make([]string, 0, len(fields))
		for _, f := range fields {
			val, _ := obj.Get(f)
			tok, err := s.renderArrayPrimitive(val, delim)
			if err != nil {
				return err
			}
			cells = append(cells, tok)
		}
		s.emit(s.indent(rowDepth) + strings.Join(cells, string(delim.rune())))
	}
	return nil
}

// emitArrayOfArrays implements the "array of primitive arrays" shape
// (Section 4.2 rule 3). Per the Design Notes open question this shape is
// selected even when inner arrays are empty, so an empty inner array
// renders as "- [0]:" rather than falling through to the general list form.
func (s *encodeState) emitArrayOfArrays(keyLit string, values []any, delim Delimiter, ctx arrayContext) error {
	header := renderHeader(keyLit, len(values), delim, nil)
	s.emit(s.indent(ctx.headerDepth) + ctx.prefix() + header)
	rowDepth := ctx.rowDepth()
	for _, inner := range values {
		items := inner.([]any)
		innerHeader := renderHeader("", len(items), delim, nil)
		line := s.indent(rowDepth) + "- " + innerHeader
		if len(items) > 0 {
			tokens := make([]string, 0, len(items))
			for _, v := range items {
				tok, err := s.renderArrayPrimitive(v, delim)
				if err != nil {
					return err
				}
				tokens = append(tokens, tok)
			}
			line += " " + strings.Join(tokens, string(delim.rune()))
		}
		s.emit(line)
	}
	return nil
}

func (s *encodeState) emitGeneralList(keyLit string, values []any, delim Delimiter, ctx arrayContext) error {
	header := renderHeader(keyLit, len(values), delim, nil)
	s.emit(s.indent(ctx.headerDepth) + ctx.prefix() + header)
	rowDepth := ctx.rowDepth()
	for _, item := range values {
		if err := s.encodeListItem(item, rowDepth); err != nil {
			return err
		}
	}
	return nil
}

func (s *encodeState) encodeListItem(item normalizedValue, depth int) error {
	switch v := item.(type) {
	case nil, bool, string, Number:
		tok, err := s.renderPrimitive(v)
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + tok)
	case Object:
		return s.encodeObjectListItem(v, depth)
	case []any:
		return s.encodeArray("", v, depth, arrayContextListFirst(depth))
	default:
		return errEncoding("unsupported list item %T", v)
	}
	return nil
}

func (s *encodeState) encodeObjectListItem(obj Object, depth int) error {
	if obj.IsEmpty() {
		s.emit(s.indent(depth) + "- ")
		return nil
	}

	firstKey, firstValue, _ := s.foldKey(obj.Fields[0].Key, obj.Fields[0].Value, obj)
	rest := Object{Fields: obj.Fields[1:]}

	switch v := firstValue.(type) {
	case Object:
		keyLit, err := encodeKey(firstKey)
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + keyLit + ":")
		if !v.IsEmpty() {
			if err := s.encodeObjectFields(v, depth+2); err != nil {
				return err
			}
		}
	case []any:
		if err := s.encodeArray(firstKey, v, depth, arrayContextListFirst(depth)); err != nil {
			return err
		}
	case nil, bool, string, Number:
		keyLit, err := encodeKey(firstKey)
		if err != nil {
			return err
		}
		tok, err := s.renderPrimitive(v)
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + keyLit + ": " + tok)
	default:
		return errEncoding("unsupported list-item field %s of type %T", firstKey, v)
	}

	if !rest.IsEmpty() {
		return s.encodeObjectFields(rest, depth+1)
	}
	return nil
}

func (s *encodeState) renderArrayPrimitive(value normalizedValue, delim Delimiter) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case Number:
		return v.Literal, nil
	case string:
		return encodeString(v, delim)
	default:
		return "", errEncoding("expected primitive cell value, found %T", value)
	}
}

func detectTabular(values []any) ([]string, bool) {
	if len(values) == 0 {
		return nil, false
	}
	first, ok := values[0].(Object)
	if !ok || first.IsEmpty() {
		return nil, false
	}
	fields := make([]string, len(first.Fields))
	for i, f := range first.Fields {
		if !isPrimitive(f.Value) {
			return nil, false
		}
		fields[i] = f.Key
	}
	for _, v := range values[1:] {
		obj, ok := v.(Object)
		if !ok || len(obj.Fields) != len(fields) {
			return nil, false
		}
		seen := make(map[string]struct{}, len(fields))
		for i, f := range obj.Fields {
			matched := f.Key == fields[i]
			if !matched || !isPrimitive(f.Value) {
				return nil, false
			}
			seen[f.Key] = struct{}{}
		}
		if len(seen) != len(fields) {
			return nil, false
		}
	}
	return fields, true
}

func isArrayOfPrimitiveArrays(values []any) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		inner, ok := v.([]any)
		if !ok {
			return false
		}
		if !isPrimitiveArray(inner) {
			return false
		}
	}
	return true
}

func renderHeader(keyLit string, length int, delim Delimiter, fields []string) string {
	var b strings.Builder
	b.WriteString(keyLit)
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(length))
	b.WriteString(delim.bracketSuffix())
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteRune(delim.rune())
			}
			lit, _ := encodeKey(f)
			b.WriteString(lit)
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

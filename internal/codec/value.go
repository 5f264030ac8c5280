package codec

// Field represents a single key/value pair in an ordered object.
type Field struct {
	Key   string
	Value any
}

// Object preserves the encounter order of its fields. The data model (TOON
// Section 3) requires object key order to be significant on both sides of a
// round-trip, so the decoder builds Object values rather than Go maps.
type Object struct {
	Fields []Field
}

// NewObject constructs an ordered Object from the provided key/value pairs.
func NewObject(fields ...Field) Object {
	return Object{Fields: append([]Field(nil), fields...)}
}

// Len reports the number of fields.
func (o Object) Len() int {
	return len(o.Fields)
}

// IsEmpty reports whether the object has no fields.
func (o Object) IsEmpty() bool {
	return len(o.Fields) == 0
}

// Get returns the value stored under key and whether it was present. Object
// keys are unique per the data model invariant; callers constructing Objects
// by hand are responsible for not violating it.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the ordered list of field keys.
func (o Object) Keys() []string {
	keys := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		keys[i] = f.Key
	}
	return keys
}

// With returns a copy of the object with key set to value, appending a new
// field if key was not already present and preserving order otherwise.
func (o Object) With(key string, value any) Object {
	fields := make([]Field, len(o.Fields))
	copy(fields, o.Fields)
	for i, f := range fields {
		if f.Key == key {
			fields[i].Value = value
			return Object{Fields: fields}
		}
	}
	return Object{Fields: append(fields, Field{Key: key, Value: value})}
}

// normalizedValue is a value that has passed through normalize and is ready
// for emission by the encoder, or a value produced by the decoder. It is one
// of: nil, bool, string, Number, Object, or []any holding more of the
// same.
type normalizedValue = any

// Number carries a pre-rendered canonical decimal literal (Section 4.2). It
// is never re-parsed; encoder and decoder agree on its textual form once
// constructed. Number is exported so that callers working with the
// decoded tree value (rather than Unmarshal into a typed struct) can
// recover the original numeric literal without precision loss.
type Number struct {
	Literal string
}

// String returns the canonical decimal literal.
func (n Number) String() string {
	return n.Literal
}

// MarshalJSON writes the literal as a raw JSON number, matching
// encoding/json.Number's behaviour.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Literal), nil
}

func isPrimitive(value any) bool {
	switch value.(type) {
	case nil, bool, string, Number:
		return true
	default:
		return false
	}
}

func isPrimitiveArray(values []any) bool {
	for _, v := range values {
		if !isPrimitive(v) {
			return false
		}
	}
	return true
}

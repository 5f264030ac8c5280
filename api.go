// Package toon implements the Tabular Object-Oriented Notation (TOON)
// encoder and decoder. TOON is a compact, indentation-sensitive text
// encoding of tree-shaped data, designed for predictable structure and a
// low token footprint. This package exposes a small public API while
// keeping implementation details inside internal packages.
package toon

import (
	"github.com/tooncore/toon-go/internal/codec"
)

// Delimiter identifies the character used to split values inside array
// scopes and to decide whether a string must be quoted outside of them.
type Delimiter = codec.Delimiter

const (
	// DelimiterComma is the default delimiter. It is omitted from the
	// array-header length bracket.
	DelimiterComma = codec.DelimiterComma
	// DelimiterTab uses HTAB for delimiting values.
	DelimiterTab = codec.DelimiterTab
	// DelimiterPipe uses the '|' character for delimiting values.
	DelimiterPipe = codec.DelimiterPipe
)

// KeyFoldingMode selects the encoder's key-folding behaviour.
type KeyFoldingMode = codec.KeyFoldingMode

// KeyFoldingOff disables key folding entirely.
func KeyFoldingOff() KeyFoldingMode { return codec.KeyFoldingOff() }

// KeyFoldingSafe enables Safe-mode key folding: single-child object chains
// whose keys are bare identifiers are collapsed into one dotted key. A
// flattenDepth of 0 means unbounded folding.
func KeyFoldingSafe(flattenDepth int) KeyFoldingMode { return codec.KeyFoldingSafe(flattenDepth) }

// ExpandPathsMode selects the decoder's path-expansion post-pass, the
// inverse of key folding.
type ExpandPathsMode = codec.ExpandPathsMode

const (
	// ExpandPathsOff leaves dotted keys untouched.
	ExpandPathsOff = codec.ExpandPathsOff
	// ExpandPathsSafe expands dotted identifier-segment keys into nested
	// objects after decoding.
	ExpandPathsSafe = codec.ExpandPathsSafe
)

// EncoderOption mutates encoding behaviour.
type EncoderOption = codec.EncoderOption

// DecoderOption mutates decoder behaviour.
type DecoderOption = codec.DecoderOption

// Number carries a canonical decimal literal produced by the encoder's
// number normalization or the decoder's number parsing. It is the tree
// value's numeric representation, used instead of float64 so arbitrary-
// precision integers and decimals survive a decode/encode round-trip
// exactly.
type Number = codec.Number

// Field represents a single key/value pair in an ordered object.
type Field = codec.Field

// Object preserves the encounter order of its fields. Decoded objects are
// always returned as Object rather than a Go map, since the data model
// requires key order to be significant on both sides of a round-trip.
type Object = codec.Object

// NewObject constructs an ordered Object from the provided key/value pairs.
func NewObject(fields ...Field) Object {
	return codec.NewObject(fields...)
}

// Encoder serializes Go values as TOON documents.
type Encoder = codec.Encoder

// NewEncoder constructs an Encoder using the supplied options.
func NewEncoder(opts ...EncoderOption) *Encoder {
	return codec.NewEncoder(opts...)
}

// Marshal renders v into a TOON document using a temporary encoder.
func Marshal(v any, opts ...EncoderOption) ([]byte, error) {
	return codec.Marshal(v, opts...)
}

// MarshalString renders v as a TOON document string.
func MarshalString(v any, opts ...EncoderOption) (string, error) {
	return codec.MarshalString(v, opts...)
}

// WithIndent configures the number of spaces used per indentation level.
func WithIndent(spaces int) EncoderOption {
	return codec.WithIndent(spaces)
}

// WithDocumentDelimiter configures the active delimiter used for both
// quoting decisions and array-header rendering.
func WithDocumentDelimiter(delimiter Delimiter) EncoderOption {
	return codec.WithDocumentDelimiter(delimiter)
}

// WithKeyFolding configures Safe-mode key folding, or disables it.
func WithKeyFolding(mode KeyFoldingMode) EncoderOption {
	return codec.WithKeyFolding(mode)
}

// Decoder parses TOON documents into Go values matching the tree-value data
// model: nil, bool, string, an arbitrary-precision number, Object for
// objects, and []any for arrays.
type Decoder = codec.Decoder

// NewDecoder constructs a Decoder with the given options.
func NewDecoder(opts ...DecoderOption) *Decoder {
	return codec.NewDecoder(opts...)
}

// Decode parses the provided TOON document using a temporary decoder.
func Decode(data []byte, opts ...DecoderOption) (any, error) {
	return codec.Decode(data, opts...)
}

// DecodeString parses a TOON document string using a temporary decoder.
func DecodeString(s string, opts ...DecoderOption) (any, error) {
	return codec.DecodeString(s, opts...)
}

// Validate decodes data and discards the result, reporting only whether it
// is well-formed TOON under the supplied options.
func Validate(data []byte, opts ...DecoderOption) error {
	return codec.Validate(data, opts...)
}

// WithStrict toggles strict-mode length and path-expansion conflict
// enforcement. Strict mode is enabled by default.
func WithStrict(strict bool) DecoderOption {
	return codec.WithStrict(strict)
}

// WithDecoderIndent configures the expected indentation step width.
func WithDecoderIndent(spaces int) DecoderOption {
	return codec.WithDecoderIndent(spaces)
}

// WithExpandPaths configures the decoder's path-expansion post-pass.
func WithExpandPaths(mode ExpandPathsMode) DecoderOption {
	return codec.WithExpandPaths(mode)
}

// Unmarshal decodes the TOON document in data into v, which must be a
// non-nil pointer. Struct fields use `toon` struct tags for naming and
// omitempty semantics, mirroring Marshal behaviour.
func Unmarshal(data []byte, v any, opts ...DecoderOption) error {
	return codec.Unmarshal(data, v, opts...)
}

// UnmarshalString decodes the TOON document in s into v.
func UnmarshalString(s string, v any, opts ...DecoderOption) error {
	return codec.UnmarshalString(s, v, opts...)
}

// DecodingError reports a decode-time violation, naming the offending
// source line when one is known.
type DecodingError = codec.DecodingError

// EncodingError reports an encoder invariant violation.
type EncodingError = codec.EncodingError

// NumberNormalizationError reports that an incoming numeric literal could
// not be parsed as a decimal.
type NumberNormalizationError = codec.NumberNormalizationError

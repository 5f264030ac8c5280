package codec

import "fmt"

// Delimiter identifies the character used to split values inside array
// scopes and to decide whether a string must be quoted outside of them.
type Delimiter rune

const (
	// DelimiterComma is the default delimiter. It is omitted from the
	// array-header length bracket.
	DelimiterComma Delimiter = ','
	// DelimiterTab uses HTAB for delimiting values.
	DelimiterTab Delimiter = '\t'
	// DelimiterPipe uses '|' for delimiting values.
	DelimiterPipe Delimiter = '|'
)

func (d Delimiter) String() string {
	switch d {
	case DelimiterComma:
		return "comma"
	case DelimiterTab:
		return "tab"
	case DelimiterPipe:
		return "pipe"
	default:
		return fmt.Sprintf("delimiter(%q)", rune(d))
	}
}

// rune returns the literal character this delimiter splits on.
func (d Delimiter) rune() rune {
	switch d {
	case DelimiterTab:
		return '\t'
	case DelimiterPipe:
		return '|'
	default:
		return ','
	}
}

// bracketSuffix returns the character appended inside an array header's
// length bracket to advertise a non-default delimiter (Section 4.2).
func (d Delimiter) bracketSuffix() string {
	switch d {
	case DelimiterTab:
		return "\t"
	case DelimiterPipe:
		return "|"
	default:
		return ""
	}
}

func delimiterFromSuffix(suffix rune) (Delimiter, bool) {
	switch suffix {
	case '\t':
		return DelimiterTab, true
	case '|':
		return DelimiterPipe, true
	default:
		return DelimiterComma, false
	}
}

// KeyFoldingMode selects the encoder's key-folding behaviour (Section 4.2).
type KeyFoldingMode struct {
	enabled      bool
	flattenDepth int // 0 means unbounded ("None" in the spec)
}

// KeyFoldingOff disables key folding entirely.
func KeyFoldingOff() KeyFoldingMode {
	return KeyFoldingMode{}
}

// KeyFoldingSafe enables Safe-mode key folding. A flattenDepth of 0 means
// unbounded folding (the spec's flatten_depth = None); any positive value
// bounds the number of segments collapsed into one dotted key.
func KeyFoldingSafe(flattenDepth int) KeyFoldingMode {
	if flattenDepth < 0 {
		flattenDepth = 0
	}
	return KeyFoldingMode{enabled: true, flattenDepth: flattenDepth}
}

func (m KeyFoldingMode) maxSegments() int {
	if !m.enabled || m.flattenDepth <= 0 {
		return -1 // unbounded
	}
	return m.flattenDepth
}

// ExpandPathsMode selects the decoder's post-pass path-expansion behaviour
// (Section 4.4).
type ExpandPathsMode bool

const (
	// ExpandPathsOff leaves dotted keys untouched.
	ExpandPathsOff ExpandPathsMode = false
	// ExpandPathsSafe expands dotted identifier-segment keys into nested
	// objects after decoding.
	ExpandPathsSafe ExpandPathsMode = true
)

// EncoderOption mutates encoding behaviour.
type EncoderOption func(*encoderOptions)

type encoderOptions struct {
	indentSize        int
	documentDelimiter Delimiter
	keyFolding        KeyFoldingMode
}

func defaultEncoderOptions() encoderOptions {
	return encoderOptions{
		indentSize:        2,
		documentDelimiter: DelimiterComma,
		keyFolding:        KeyFoldingOff(),
	}
}

// WithIndent configures the number of spaces used per indentation level.
// Non-positive values are ignored and the default (2) is kept.
func WithIndent(spaces int) EncoderOption {
	return func(o *encoderOptions) {
		if spaces > 0 {
			o.indentSize = spaces
		}
	}
}

// WithDocumentDelimiter configures the active delimiter for both quoting
// decisions and array-header rendering.
func WithDocumentDelimiter(delimiter Delimiter) EncoderOption {
	return func(o *encoderOptions) {
		if delimiter == DelimiterComma || delimiter == DelimiterTab || delimiter == DelimiterPipe {
			o.documentDelimiter = delimiter
		}
	}
}

// WithKeyFolding configures Safe-mode key folding (or disables it).
func WithKeyFolding(mode KeyFoldingMode) EncoderOption {
	return func(o *encoderOptions) {
		o.keyFolding = mode
	}
}

// DecoderOption mutates decoder behaviour.
type DecoderOption func(*decoderOptions)

type decoderOptions struct {
	indentSize  int
	strict      bool
	expandPaths ExpandPathsMode
}

func defaultDecoderOptions() decoderOptions {
	return decoderOptions{
		indentSize:  2,
		strict:      true,
		expandPaths: ExpandPathsOff,
	}
}

// WithStrict toggles strict-mode length/conflict enforcement (Section 4.3,
// 4.4). Strict mode is enabled by default.
func WithStrict(strict bool) DecoderOption {
	return func(o *decoderOptions) {
		o.strict = strict
	}
}

// WithDecoderIndent configures the expected indentation step width.
func WithDecoderIndent(spaces int) DecoderOption {
	return func(o *decoderOptions) {
		if spaces > 0 {
			o.indentSize = spaces
		}
	}
}

// WithExpandPaths configures the decoder's path-expansion post-pass.
func WithExpandPaths(mode ExpandPathsMode) DecoderOption {
	return func(o *decoderOptions) {
		o.expandPaths = mode
	}
}

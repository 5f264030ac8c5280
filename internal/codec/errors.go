package codec

import "fmt"

// DecodingError carries the 1-based source line number of the offending
// line, per Section 7. The decoder is local-fatal: it reports the first
// violation it finds and stops.
type DecodingError struct {
	Line    int
	Message string
}

func (e *DecodingError) Error() string {
	if e.Line <= 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func errorAt(line int, msg string) error {
	return &DecodingError{Line: line, Message: msg}
}

func errorAtf(line int, format string, args ...any) error {
	return &DecodingError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// errDecode reports a decode-time violation that has no specific source
// line, such as a path-expansion conflict discovered during the post-pass.
func errDecode(format string, args ...any) error {
	return &DecodingError{Message: fmt.Sprintf(format, args...)}
}

func errorWrap(line int, err error) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DecodingError); ok {
		if de.Line > 0 {
			return de
		}
		return &DecodingError{Line: line, Message: de.Message}
	}
	return &DecodingError{Line: line, Message: err.Error()}
}

// EncodingError reports an encoder invariant violation (Section 7). A
// well-formed tree value with well-formed options never produces one.
type EncodingError struct {
	Message string
}

func (e *EncodingError) Error() string {
	return e.Message
}

func errEncoding(format string, args ...any) error {
	return &EncodingError{Message: fmt.Sprintf(format, args...)}
}

// NumberNormalizationError reports that an incoming numeric literal could
// not be parsed as a decimal (Section 7).
type NumberNormalizationError struct {
	Value string
	Err   error
}

func (e *NumberNormalizationError) Error() string {
	return fmt.Sprintf("number normalization error for %q: %v", e.Value, e.Err)
}

func (e *NumberNormalizationError) Unwrap() error {
	return e.Err
}

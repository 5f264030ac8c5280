package codec

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// canonicalizeDecimalString renders raw (an arbitrary JSON-number-grammar
// literal) per Section 4.2: integers representable as int64/uint64 keep
// their usual decimal form; everything else is parsed as an
// arbitrary-precision decimal, normalized (trailing fractional zeros
// stripped, -0 collapsed to 0), and emitted without an exponent.
func canonicalizeDecimalString(raw string) (string, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return strconv.FormatUint(u, 10), nil
	}

	d, _, err := apd.NewFromString(raw)
	if err != nil {
		return "", &NumberNormalizationError{Value: raw, Err: err}
	}
	return formatDecimal(d), nil
}

// formatDecimal renders d without scientific notation, trimming trailing
// fractional zeros and collapsing -0 to 0.
func formatDecimal(d *apd.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	var reduced apd.Decimal
	_, _ = apd.BaseContext.Reduce(&reduced, d)
	text := reduced.Text('f')
	if text == "-0" {
		return "0"
	}
	return text
}

// Package adapters converts foreign tree-shaped formats (JSON, YAML, XML,
// CSV) into the ordered tree value that github.com/tooncore/toon-go accepts
// for encoding. This is explicitly outside the TOON core (encoder, decoder,
// quoting): it exists so cmd/toon can accept non-TOON input.
package adapters

import "fmt"

// Format names a supported input format for the --from flag.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a --from flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatXML, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("adapters: unsupported source format %q", s)
	}
}

// Load converts raw input in the given format into a TOON-ready tree value:
// nil, bool, string, json.Number, toon.Object, or []any holding more of the
// same.
func Load(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return LoadJSON(data)
	case FormatYAML:
		return LoadYAML(data)
	case FormatXML:
		return LoadXML(data)
	case FormatCSV:
		return LoadCSV(data)
	default:
		return nil, fmt.Errorf("adapters: unsupported source format %q", format)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	toon "github.com/tooncore/toon-go"
)

var flagPrettyJSON bool

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a TOON document into JSON",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&flagPrettyJSON, "pretty-json", true, "indent the emitted JSON")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults(cmd)
	if err != nil {
		return err
	}

	raw, err := readInput()
	if err != nil {
		return err
	}

	opts, err := decoderOptions(defaults)
	if err != nil {
		return err
	}

	value, err := toon.Decode(raw, opts...)
	if err != nil {
		var decErr *toon.DecodingError
		if asDecodingError(err, &decErr) {
			fmt.Fprintln(os.Stderr, renderDecodeError(decErr.Error(), defaults.ColorDiagnostic && !flagNoColor))
			return errSilent{err}
		}
		return err
	}

	var buf bytes.Buffer
	if err := writeOrderedJSON(&buf, value); err != nil {
		return err
	}
	marshaled := buf.Bytes()
	if flagPrettyJSON {
		var indented bytes.Buffer
		if err := json.Indent(&indented, marshaled, "", "  "); err != nil {
			return err
		}
		marshaled = indented.Bytes()
	}
	return writeOutput(marshaled)
}

// writeOrderedJSON renders a decoded value as JSON, preserving toon.Object
// field order. encoding/json has no concept of ordered objects (a Go map
// marshals with keys sorted lexically), so objects are hand-written here
// rather than routed through json.Marshal on a map.
func writeOrderedJSON(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case toon.Object:
		buf.WriteByte('{')
		for i, f := range val.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeOrderedJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeOrderedJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	}
}

// errSilent marks an error already reported to stderr so main doesn't
// print it a second time.
type errSilent struct{ err error }

func (e errSilent) Error() string { return e.err.Error() }

func asDecodingError(err error, target **toon.DecodingError) bool {
	if de, ok := err.(*toon.DecodingError); ok {
		*target = de
		return true
	}
	return false
}

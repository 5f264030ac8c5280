package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	toon "github.com/tooncore/toon-go"
	"github.com/tooncore/toon-go/internal/adapters"
)

var flagFrom string

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode JSON, YAML, XML, or CSV input as TOON",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&flagFrom, "from", "", "source format: json, yaml, xml, or csv (defaults to the input file extension, or json for stdin)")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults(cmd)
	if err != nil {
		return err
	}

	raw, err := readInput()
	if err != nil {
		return err
	}

	format, err := resolveSourceFormat(flagFrom, flagInput)
	if err != nil {
		return err
	}

	log.Debug().Str("format", string(format)).Int("bytes", len(raw)).Msg("loading source document")
	value, err := adapters.Load(raw, format)
	if err != nil {
		return err
	}

	opts, err := encoderOptions(defaults)
	if err != nil {
		return err
	}

	out, err := toon.Marshal(value, opts...)
	if err != nil {
		return err
	}

	return writeOutput(out)
}

func resolveSourceFormat(explicit, inputPath string) (adapters.Format, error) {
	if explicit != "" {
		return adapters.ParseFormat(explicit)
	}
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".yaml", ".yml":
		return adapters.FormatYAML, nil
	case ".xml":
		return adapters.FormatXML, nil
	case ".csv":
		return adapters.FormatCSV, nil
	default:
		return adapters.FormatJSON, nil
	}
}

func readInput() ([]byte, error) {
	if flagInput == "" || flagInput == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(flagInput)
}

func writeOutput(data []byte) error {
	if flagOutput == "" || flagOutput == "-" {
		_, err := os.Stdout.Write(appendTrailingNewline(data))
		return err
	}
	return os.WriteFile(flagOutput, appendTrailingNewline(data), 0o644)
}

func appendTrailingNewline(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\n' {
		return data
	}
	return append(data, '\n')
}

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	toon "github.com/tooncore/toon-go"
	"github.com/tooncore/toon-go/cmd/toon/internal/config"
)

var (
	flagInput         string
	flagOutput        string
	flagIndent        int
	flagDelimiter     string
	flagKeyFolding    string
	flagFlattenDepth  int
	flagDecoderIndent int
	flagExpandPaths   string
	flagLoose         bool
	flagNoColor       bool
	flagVerbose       bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "toon",
	Short: "Convert structured data to and from TOON",
	Long: `toon encodes JSON/YAML/XML/CSV input into Tabular Object-Oriented
Notation, and decodes or validates TOON documents.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = newLogger(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagInput, "input", "i", "", "input file path (defaults to stdin)")
	pf.StringVarP(&flagOutput, "output", "o", "", "output file path (defaults to stdout)")
	pf.IntVar(&flagIndent, "indent", 2, "spaces per indentation level when encoding")
	pf.StringVar(&flagDelimiter, "delimiter", "comma", "document delimiter: comma, tab, or pipe")
	pf.StringVar(&flagKeyFolding, "key-folding", "off", "encoder key folding: off or safe")
	pf.IntVar(&flagFlattenDepth, "flatten-depth", 0, "max folded segments under --key-folding safe (0 = unbounded)")
	pf.IntVar(&flagDecoderIndent, "decoder-indent", 2, "expected indentation width when decoding or validating")
	pf.StringVar(&flagExpandPaths, "expand-paths", "off", "decoder path expansion: off or safe")
	pf.BoolVar(&flagLoose, "loose", false, "disable strict-mode length and path-expansion checks")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored diagnostics")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")
}

// Execute runs the root command; it is the process entry point called from main().
func Execute() error {
	return rootCmd.Execute()
}

func loadDefaults(cmd *cobra.Command) (config.Defaults, error) {
	return config.Load(cmd.Flags())
}

func resolveDelimiter(name string) (toon.Delimiter, error) {
	switch name {
	case "comma", "":
		return toon.DelimiterComma, nil
	case "tab":
		return toon.DelimiterTab, nil
	case "pipe":
		return toon.DelimiterPipe, nil
	default:
		return toon.DelimiterComma, fmt.Errorf("unknown delimiter %q", name)
	}
}

func resolveKeyFolding(name string, flattenDepth int) (toon.KeyFoldingMode, error) {
	switch name {
	case "off", "":
		return toon.KeyFoldingOff(), nil
	case "safe":
		return toon.KeyFoldingSafe(flattenDepth), nil
	default:
		return toon.KeyFoldingOff(), fmt.Errorf("unknown key-folding mode %q", name)
	}
}

func resolveExpandPaths(name string) (toon.ExpandPathsMode, error) {
	switch name {
	case "off", "":
		return toon.ExpandPathsOff, nil
	case "safe":
		return toon.ExpandPathsSafe, nil
	default:
		return toon.ExpandPathsOff, fmt.Errorf("unknown expand-paths mode %q", name)
	}
}

func encoderOptions(d config.Defaults) ([]toon.EncoderOption, error) {
	delim, err := resolveDelimiter(d.Delimiter)
	if err != nil {
		return nil, err
	}
	folding, err := resolveKeyFolding(d.KeyFolding, d.FlattenDepth)
	if err != nil {
		return nil, err
	}
	return []toon.EncoderOption{
		toon.WithIndent(d.Indent),
		toon.WithDocumentDelimiter(delim),
		toon.WithKeyFolding(folding),
	}, nil
}

func decoderOptions(d config.Defaults) ([]toon.DecoderOption, error) {
	expand, err := resolveExpandPaths(d.ExpandPaths)
	if err != nil {
		return nil, err
	}
	return []toon.DecoderOption{
		toon.WithDecoderIndent(d.DecoderIndent),
		toon.WithStrict(d.Strict && !flagLoose),
		toon.WithExpandPaths(expand),
	}, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	toon "github.com/tooncore/toon-go"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate one or more TOON documents without printing their contents",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults(cmd)
	if err != nil {
		return err
	}
	opts, err := decoderOptions(defaults)
	if err != nil {
		return err
	}
	colorize := defaults.ColorDiagnostic && !flagNoColor

	if len(args) == 0 {
		raw, err := readInput()
		if err != nil {
			return err
		}
		if err := toon.Validate(raw, opts...); err != nil {
			fmt.Fprintln(os.Stderr, renderDecodeError(err.Error(), colorize))
			return errSilent{err}
		}
		printValidateSuccess("stdin", colorize)
		return nil
	}

	var combined error
	failed := 0
	for _, path := range args {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			combined = multierr.Append(combined, fmt.Errorf("%s: %w", path, readErr))
			failed++
			continue
		}
		if err := toon.Validate(raw, opts...); err != nil {
			combined = multierr.Append(combined, fmt.Errorf("%s: %w", path, err))
			failed++
			log.Debug().Str("file", path).Err(err).Msg("validation failed")
			continue
		}
		printValidateSuccess(path, colorize)
	}

	if combined != nil {
		for _, err := range multierr.Errors(combined) {
			fmt.Fprintln(os.Stderr, renderDecodeError(err.Error(), colorize))
		}
		return errSilent{fmt.Errorf("%d of %d document(s) failed validation", failed, len(args))}
	}
	return nil
}

func printValidateSuccess(label string, colorize bool) {
	msg := fmt.Sprintf("%s: ok", label)
	if colorize {
		msg = successStyle.Render(label+": ") + successStyle.Render("ok")
	}
	fmt.Fprintln(os.Stdout, msg)
}

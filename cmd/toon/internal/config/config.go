// Package config resolves cmd/toon's encoder/decoder defaults from flags,
// TOON_* environment variables, and an optional .toonrc YAML file,
// layered with github.com/spf13/viper the way madstone-tech-loko's cmd/root.go
// layers its own TOML configuration.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults holds the resolved option values shared by every subcommand.
type Defaults struct {
	Indent          int
	Delimiter       string
	KeyFolding      string
	FlattenDepth    int
	DecoderIndent   int
	Strict          bool
	ExpandPaths     string
	ColorDiagnostic bool
}

// Load resolves Defaults from, in increasing priority: built-in defaults,
// an optional YAML config file named .toonrc (with or without a .yaml/.yml
// extension, searched in the current directory and $HOME; a file named
// toon.yaml is not read), TOON_* environment variables, and the flags in
// the given set, which Load binds itself.
func Load(flags *pflag.FlagSet) (Defaults, error) {
	v := viper.New()

	v.SetDefault("indent", 2)
	v.SetDefault("delimiter", "comma")
	v.SetDefault("key-folding", "off")
	v.SetDefault("flatten-depth", 0)
	v.SetDefault("decoder-indent", 2)
	v.SetDefault("strict", true)
	v.SetDefault("expand-paths", "off")
	v.SetDefault("color", true)

	v.SetConfigName(".toonrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Defaults{}, err
		}
	}

	v.SetEnvPrefix("TOON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Defaults{}, err
		}
	}

	return Defaults{
		Indent:          v.GetInt("indent"),
		Delimiter:       v.GetString("delimiter"),
		KeyFolding:      v.GetString("key-folding"),
		FlattenDepth:    v.GetInt("flatten-depth"),
		DecoderIndent:   v.GetInt("decoder-indent"),
		Strict:          v.GetBool("strict"),
		ExpandPaths:     v.GetString("expand-paths"),
		ColorDiagnostic: v.GetBool("color"),
	}, nil
}

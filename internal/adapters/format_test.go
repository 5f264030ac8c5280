package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	valid := map[string]Format{
		"json": FormatJSON,
		"yaml": FormatYAML,
		"xml":  FormatXML,
		"csv":  FormatCSV,
	}
	for in, want := range valid {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("toml")
	require.Error(t, err)
}

func TestLoadDispatchesByFormat(t *testing.T) {
	value, err := Load([]byte(`{"a": 1}`), FormatJSON)
	require.NoError(t, err)
	require.NotNil(t, value)
}

package adapters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/tooncore/toon-go"
)

func TestLoadJSONPreservesKeyOrder(t *testing.T) {
	value, err := LoadJSON([]byte(`{"z": 1, "a": 2, "m": {"inner": true}}`))
	require.NoError(t, err)

	obj, ok := value.(toon.Object)
	require.True(t, ok, "expected toon.Object, got %T", value)
	require.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	inner, ok := obj.Get("m")
	require.True(t, ok)
	innerObj, ok := inner.(toon.Object)
	require.True(t, ok)
	flag, ok := innerObj.Get("inner")
	require.True(t, ok)
	require.Equal(t, true, flag)
}

func TestLoadJSONArray(t *testing.T) {
	value, err := LoadJSON([]byte(`[1, 2, "three", null]`))
	require.NoError(t, err)

	items, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, items, 4)
	require.Nil(t, items[3])
	require.Equal(t, "three", items[2])
}

func TestLoadJSONUsesNumberNotFloat(t *testing.T) {
	value, err := LoadJSON([]byte(`{"big": 9007199254740993}`))
	require.NoError(t, err)
	obj := value.(toon.Object)
	big, ok := obj.Get("big")
	require.True(t, ok)
	num, ok := big.(json.Number)
	require.True(t, ok, "expected json.Number, got %T", big)
	require.Equal(t, "9007199254740993", num.String())
}

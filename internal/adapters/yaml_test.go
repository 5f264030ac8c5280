package adapters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/tooncore/toon-go"
)

func TestLoadYAMLPreservesKeyOrder(t *testing.T) {
	src := "z: 1\na: 2\nm:\n  inner: true\n"
	value, err := LoadYAML([]byte(src))
	require.NoError(t, err)

	obj, ok := value.(toon.Object)
	require.True(t, ok, "expected toon.Object, got %T", value)
	require.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	z, _ := obj.Get("z")
	num, ok := z.(json.Number)
	require.True(t, ok)
	require.Equal(t, "1", num.String())
}

func TestLoadYAMLSequence(t *testing.T) {
	src := "- one\n- two\n- 3\n"
	value, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	items, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, items, 3)
	require.Equal(t, "one", items[0])
}

func TestLoadYAMLNullAndBool(t *testing.T) {
	src := "a: null\nb: true\nc: false\n"
	value, err := LoadYAML([]byte(src))
	require.NoError(t, err)
	obj := value.(toon.Object)
	a, ok := obj.Get("a")
	require.True(t, ok)
	require.Nil(t, a)
	b, _ := obj.Get("b")
	require.Equal(t, true, b)
	c, _ := obj.Get("c")
	require.Equal(t, false, c)
}

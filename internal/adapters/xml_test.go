package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/tooncore/toon-go"
)

func TestLoadXMLAttributesAndText(t *testing.T) {
	src := `<item id="7">widget</item>`
	value, err := LoadXML([]byte(src))
	require.NoError(t, err)

	root := value.(toon.Object)
	item, ok := root.Get("item")
	require.True(t, ok)
	itemObj := item.(toon.Object)

	id, ok := itemObj.Get("@id")
	require.True(t, ok)
	require.Equal(t, "7", id)

	text, ok := itemObj.Get("_text")
	require.True(t, ok)
	require.Equal(t, "widget", text)
}

func TestLoadXMLGroupsRepeatedChildren(t *testing.T) {
	src := `<catalog><item>a</item><item>b</item><single>only</single></catalog>`
	value, err := LoadXML([]byte(src))
	require.NoError(t, err)

	root := value.(toon.Object)
	catalog, ok := root.Get("catalog")
	require.True(t, ok)
	catalogObj := catalog.(toon.Object)

	items, ok := catalogObj.Get("item")
	require.True(t, ok)
	itemList, ok := items.([]any)
	require.True(t, ok)
	require.Len(t, itemList, 2)
	require.Equal(t, "a", itemList[0])
	require.Equal(t, "b", itemList[1])

	single, ok := catalogObj.Get("single")
	require.True(t, ok)
	require.Equal(t, "only", single)
}

func TestLoadXMLSimpleTextElement(t *testing.T) {
	src := `<root>hello</root>`
	value, err := LoadXML([]byte(src))
	require.NoError(t, err)
	root := value.(toon.Object)
	text, ok := root.Get("root")
	require.True(t, ok)
	require.Equal(t, "hello", text)
}

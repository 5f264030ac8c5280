package adapters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/tooncore/toon-go"
)

func TestLoadCSVInfersCellTypes(t *testing.T) {
	src := "id,name,active,note\n1,alice,true,\n2,bob,false,hello\n"
	value, err := LoadCSV([]byte(src))
	require.NoError(t, err)

	rows, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)

	row0 := rows[0].(toon.Object)
	id, ok := row0.Get("id")
	require.True(t, ok)
	num, ok := id.(json.Number)
	require.True(t, ok)
	require.Equal(t, "1", num.String())

	active, _ := row0.Get("active")
	require.Equal(t, true, active)

	note, _ := row0.Get("note")
	require.Equal(t, "", note)

	row1 := rows[1].(toon.Object)
	name, _ := row1.Get("name")
	require.Equal(t, "bob", name)
	activeFalse, _ := row1.Get("active")
	require.Equal(t, false, activeFalse)
}

func TestLoadCSVPreservesColumnOrder(t *testing.T) {
	src := "z,a,m\n1,2,3\n"
	value, err := LoadCSV([]byte(src))
	require.NoError(t, err)
	rows := value.([]any)
	row := rows[0].(toon.Object)
	require.Equal(t, []string{"z", "a", "m"}, row.Keys())
}

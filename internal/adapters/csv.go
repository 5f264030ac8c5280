package adapters

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	toon "github.com/tooncore/toon-go"
)

// LoadCSV converts a header-row CSV document into an array of row objects,
// one per data row, each keyed by the header in column order. Cells are
// inferred as bool, null, number, or string; an empty cell decodes to "".
func LoadCSV(data []byte) (any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("adapters: csv: %w", err)
	}

	var rows []any
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("adapters: csv: %w", err)
		}

		fields := make([]toon.Field, 0, len(headers))
		for i, header := range headers {
			cell := ""
			if i < len(record) {
				cell = strings.TrimSpace(record[i])
			}
			fields = append(fields, toon.Field{Key: header, Value: inferCSVCell(cell)})
		}
		rows = append(rows, toon.NewObject(fields...))
	}
	return rows, nil
}

func inferCSVCell(cell string) any {
	if cell == "" {
		return ""
	}
	switch cell {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if isNumericCell(cell) {
		return json.Number(cell)
	}
	return cell
}

func isNumericCell(s string) bool {
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}

package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"

	toon "github.com/tooncore/toon-go"
)

// LoadJSON converts JSON input into a TOON-ready tree value. encoding/json's
// map decoding does not preserve key order, so this walks the token stream
// directly and builds toon.Object values in encounter order instead.
func LoadJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	value, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("adapters: json: %w", err)
	}
	return value, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number, string, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (toon.Object, error) {
	var fields []toon.Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return toon.Object{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return toon.Object{}, fmt.Errorf("expected string key, got %v", keyTok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return toon.Object{}, err
		}
		fields = append(fields, toon.Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return toon.Object{}, err
	}
	return toon.NewObject(fields...), nil
}

func decodeJSONArray(dec *json.Decoder) ([]any, error) {
	var items []any
	for dec.More() {
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return items, nil
}
